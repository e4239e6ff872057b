package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/deployboard/cli/entity"
	"github.com/stretchr/testify/require"
)

func sample() *entity.Deployment {
	completed := time.Date(2024, 5, 1, 12, 5, 0, 0, time.UTC)
	return &entity.Deployment{
		ID:          "2",
		AppName:     "backend-api",
		Environment: "staging",
		Branch:      "develop",
		CommitHash:  "def456",
		Status:      entity.STATUS_SUCCESSFUL,
		StartedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		CompletedAt: &completed,
	}
}

func TestStatusValidity(t *testing.T) {
	for _, status := range entity.DeploymentStatuses {
		require.True(t, status.IsValid(), status)
	}
	require.False(t, entity.DeploymentStatus("success").IsValid())
	require.False(t, entity.DeploymentStatus("").IsValid())

	require.True(t, entity.STATUS_SUCCESSFUL.IsTerminal())
	require.True(t, entity.STATUS_FAILED.IsTerminal())
	require.False(t, entity.STATUS_QUEUED.IsTerminal())
	require.False(t, entity.STATUS_IN_PROGRESS.IsTerminal())
}

func TestCopySharesNoPointers(t *testing.T) {
	d := sample()
	cp := d.Copy()
	require.Equal(t, d, cp)

	*cp.CompletedAt = cp.CompletedAt.Add(time.Hour)
	require.NotEqual(t, d.CompletedAt, cp.CompletedAt)

	var nilDeployment *entity.Deployment
	require.Nil(t, nilDeployment.Copy())
}

func TestApplyOnlyTouchesSetFields(t *testing.T) {
	d := sample()
	status := entity.STATUS_FAILED
	branch := "hotfix"

	updated := d.Apply(&entity.DeploymentPatch{Status: &status, Branch: &branch})
	require.Equal(t, entity.STATUS_FAILED, updated.Status)
	require.Equal(t, "hotfix", updated.Branch)
	require.Equal(t, d.AppName, updated.AppName)
	require.Equal(t, d.CompletedAt, updated.CompletedAt)

	require.Equal(t, entity.STATUS_SUCCESSFUL, d.Status)
	require.Equal(t, d, d.Apply(nil))
}

func TestPatchFromDeploymentRoundTrips(t *testing.T) {
	d := sample()
	patch := entity.PatchFromDeployment(d)
	require.False(t, patch.IsEmpty())
	require.Equal(t, d, (&entity.Deployment{ID: d.ID}).Apply(patch))
}

func TestPatchEncodesOnlySetFields(t *testing.T) {
	require.True(t, (&entity.DeploymentPatch{}).IsEmpty())
	var nilPatch *entity.DeploymentPatch
	require.True(t, nilPatch.IsEmpty())

	status := entity.STATUS_IN_PROGRESS
	b, err := json.Marshal(&entity.DeploymentPatch{Status: &status})
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"in-progress"}`, string(b))
}

func TestDeploymentWireFormat(t *testing.T) {
	var d entity.Deployment
	err := json.Unmarshal([]byte(`{"id":"20240501120000","appName":"frontend-app","environment":"dev","branch":"main","status":"queued","startedAt":"2024-05-01T12:00:00Z"}`), &d)
	require.NoError(t, err)
	require.Equal(t, "20240501120000", d.ID)
	require.Equal(t, entity.STATUS_QUEUED, d.Status)
	require.Nil(t, d.CompletedAt)

	b, err := json.Marshal(&d)
	require.NoError(t, err)
	require.NotContains(t, string(b), "completedAt")
	require.NotContains(t, string(b), "commitHash")
}

func TestStateCopyIsDeep(t *testing.T) {
	state := entity.DeploymentsState{
		Items:  []*entity.Deployment{sample()},
		Status: entity.REQUEST_SUCCEEDED,
	}
	cp := state.Copy()
	cp.Items[0].AppName = "changed"
	cp.Items = append(cp.Items, sample())

	require.Equal(t, "backend-api", state.Items[0].AppName)
	require.Len(t, state.Items, 1)
}
