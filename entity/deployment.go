package entity

import "time"

type DeploymentStatus string

const (
	STATUS_QUEUED      DeploymentStatus = "queued"
	STATUS_IN_PROGRESS DeploymentStatus = "in-progress"
	STATUS_SUCCESSFUL  DeploymentStatus = "successful"
	STATUS_FAILED      DeploymentStatus = "failed"
)

// DeploymentStatuses lists every status in lifecycle order
var DeploymentStatuses = []DeploymentStatus{
	STATUS_QUEUED,
	STATUS_IN_PROGRESS,
	STATUS_SUCCESSFUL,
	STATUS_FAILED,
}

func (s DeploymentStatus) IsValid() bool {
	for _, status := range DeploymentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a deployment in this status has finished
func (s DeploymentStatus) IsTerminal() bool {
	return s == STATUS_SUCCESSFUL || s == STATUS_FAILED
}

type Deployment struct {
	ID          string           `json:"id"`
	AppName     string           `json:"appName"`
	Environment string           `json:"environment"`
	Branch      string           `json:"branch"`
	CommitHash  string           `json:"commitHash,omitempty"`
	Status      DeploymentStatus `json:"status"`
	StartedAt   time.Time        `json:"startedAt"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
}

// Copy returns a deployment that shares no pointers with d
func (d *Deployment) Copy() *Deployment {
	if d == nil {
		return nil
	}
	cp := *d
	if d.CompletedAt != nil {
		completedAt := *d.CompletedAt
		cp.CompletedAt = &completedAt
	}
	return &cp
}

// Apply returns a copy of d with every field set in patch overwritten
func (d *Deployment) Apply(patch *DeploymentPatch) *Deployment {
	cp := d.Copy()
	if patch == nil {
		return cp
	}
	if patch.AppName != nil {
		cp.AppName = *patch.AppName
	}
	if patch.Environment != nil {
		cp.Environment = *patch.Environment
	}
	if patch.Branch != nil {
		cp.Branch = *patch.Branch
	}
	if patch.CommitHash != nil {
		cp.CommitHash = *patch.CommitHash
	}
	if patch.Status != nil {
		cp.Status = *patch.Status
	}
	if patch.StartedAt != nil {
		cp.StartedAt = *patch.StartedAt
	}
	if patch.CompletedAt != nil {
		completedAt := *patch.CompletedAt
		cp.CompletedAt = &completedAt
	}
	return cp
}

// DeploymentPatch carries the fields of an update. Nil fields are left untouched.
type DeploymentPatch struct {
	AppName     *string           `json:"appName,omitempty"`
	Environment *string           `json:"environment,omitempty"`
	Branch      *string           `json:"branch,omitempty"`
	CommitHash  *string           `json:"commitHash,omitempty"`
	Status      *DeploymentStatus `json:"status,omitempty"`
	StartedAt   *time.Time        `json:"startedAt,omitempty"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
}

func (p *DeploymentPatch) IsEmpty() bool {
	return p == nil || *p == DeploymentPatch{}
}

// PatchFromDeployment builds a patch that sets every field of d
func PatchFromDeployment(d *Deployment) *DeploymentPatch {
	cp := d.Copy()
	patch := &DeploymentPatch{
		AppName:     &cp.AppName,
		Environment: &cp.Environment,
		Branch:      &cp.Branch,
		Status:      &cp.Status,
		StartedAt:   &cp.StartedAt,
		CompletedAt: cp.CompletedAt,
	}
	if cp.CommitHash != "" {
		patch.CommitHash = &cp.CommitHash
	}
	return patch
}

type CreateDeploymentRequest struct {
	AppName     string           `json:"appName"`
	Environment string           `json:"environment"`
	Branch      string           `json:"branch"`
	CommitHash  string           `json:"commitHash,omitempty"`
	Status      DeploymentStatus `json:"status"`
	StartedAt   *time.Time       `json:"startedAt,omitempty"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
}

type UpdateDeploymentRequest struct {
	ID    string
	Patch *DeploymentPatch
}
