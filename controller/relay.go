package controller

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/deployboard/cli/entity"
	"github.com/deployboard/cli/errors"
	gh "github.com/google/go-github/github"
	"go.uber.org/zap"
)

// githubStates maps GitHub deployment states onto dashboard statuses.
// States missing here (inactive, ...) are not relayed.
var githubStates = map[string]entity.DeploymentStatus{
	"pending":     entity.STATUS_QUEUED,
	"queued":      entity.STATUS_QUEUED,
	"in_progress": entity.STATUS_IN_PROGRESS,
	"success":     entity.STATUS_SUCCESSFUL,
	"failure":     entity.STATUS_FAILED,
	"error":       entity.STATUS_FAILED,
}

// Relay turns a GitHub deployment or deployment_status webhook into a create
// or an update against the API
func (c *Controller) Relay(ctx context.Context, req *entity.RelayRequest) (*entity.RelayResult, error) {
	if req.Event != entity.GITHUB_EVENT_DEPLOYMENT && req.Event != entity.GITHUB_EVENT_DEPLOYMENT_STATUS {
		return nil, errors.WebhookEventNotSupported
	}
	event, err := gh.ParseWebHook(req.Event, req.Payload)
	if err != nil {
		c.logger.Warn("webhook payload rejected", zap.String("event", req.Event), zap.Error(err))
		return nil, errors.WebhookPayloadInvalid
	}

	switch e := event.(type) {
	case *gh.DeploymentEvent:
		return c.relayDeployment(ctx, e)
	case *gh.DeploymentStatusEvent:
		return c.relayDeploymentStatus(ctx, e)
	default:
		return nil, errors.WebhookEventNotSupported
	}
}

func (c *Controller) relayDeployment(ctx context.Context, e *gh.DeploymentEvent) (*entity.RelayResult, error) {
	deployment := e.GetDeployment()
	createReq := &entity.CreateDeploymentRequest{
		AppName:     e.GetRepo().GetName(),
		Environment: deployment.GetEnvironment(),
		Branch:      deployment.GetRef(),
		CommitHash:  deployment.GetSHA(),
		Status:      entity.STATUS_QUEUED,
	}
	if createdAt := deployment.GetCreatedAt(); !createdAt.IsZero() {
		startedAt := createdAt.Time
		createReq.StartedAt = &startedAt
	}

	created, err := c.CreateDeployment(ctx, createReq)
	if err != nil {
		return nil, err
	}
	return &entity.RelayResult{Action: entity.ACTION_CREATE, Deployment: created}, nil
}

func (c *Controller) relayDeploymentStatus(ctx context.Context, e *gh.DeploymentStatusEvent) (*entity.RelayResult, error) {
	state := e.GetDeploymentStatus().GetState()
	status, ok := githubStates[state]
	if !ok {
		return &entity.RelayResult{
			Action:  entity.ACTION_UPDATE,
			Skipped: true,
			Reason:  fmt.Sprintf("state %q is not tracked", state),
		}, nil
	}

	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	target := c.findRelayTarget(e)
	if target == nil {
		return &entity.RelayResult{
			Action:  entity.ACTION_UPDATE,
			Skipped: true,
			Reason:  fmt.Sprintf("no deployment matches GitHub deployment %d", e.GetDeployment().GetID()),
		}, nil
	}

	patch := &entity.DeploymentPatch{Status: &status}
	if status.IsTerminal() {
		completedAt := c.now()
		if updatedAt := e.GetDeploymentStatus().GetUpdatedAt(); !updatedAt.IsZero() {
			completedAt = updatedAt.Time
		}
		patch.CompletedAt = &completedAt
	}

	updated, err := c.UpdateDeployment(ctx, target.ID, patch)
	if err != nil {
		return nil, err
	}
	return &entity.RelayResult{Action: entity.ACTION_UPDATE, Deployment: updated}, nil
}

// findRelayTarget matches by GitHub deployment id first. Servers that assign
// their own ids are matched on app, environment and branch instead, picking
// the newest deployment that has not finished yet.
func (c *Controller) findRelayTarget(e *gh.DeploymentStatusEvent) *entity.Deployment {
	if id := e.GetDeployment().GetID(); id != 0 {
		if d, ok := c.store.Find(strconv.FormatInt(id, 10)); ok {
			return d
		}
	}

	appName := e.GetRepo().GetName()
	environment := e.GetDeployment().GetEnvironment()
	branch := e.GetDeployment().GetRef()

	var match *entity.Deployment
	var newest time.Time
	for _, d := range c.store.State().Items {
		if d.AppName != appName || d.Environment != environment || d.Branch != branch {
			continue
		}
		if d.Status.IsTerminal() {
			continue
		}
		if match == nil || d.StartedAt.After(newest) {
			match = d
			newest = d.StartedAt
		}
	}
	return match
}
