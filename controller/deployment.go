package controller

import (
	"context"
	"net/http"

	"github.com/deployboard/cli/entity"
	"github.com/deployboard/cli/errors"
	"github.com/deployboard/cli/gateway"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"
)

// FetchDeployments refreshes the store and waits for the result
func (c *Controller) FetchDeployments(ctx context.Context) entity.Outcome {
	return <-c.store.FetchAll(ctx)
}

func (c *Controller) CreateDeployment(ctx context.Context, req *entity.CreateDeploymentRequest) (*entity.Deployment, error) {
	if !req.Status.IsValid() {
		return nil, errors.InvalidDeploymentStatus
	}
	outcome := <-c.store.Create(ctx, req)
	if outcome.Err != nil {
		return nil, outcome.Err
	}
	return outcome.Deployment, nil
}

// UpdateDeployment applies patch to the deployment with the given id. When the
// current record can be looked up the whole merged record is sent, so servers
// that replace instead of patching keep the untouched fields. Otherwise the
// bare patch goes out.
func (c *Controller) UpdateDeployment(ctx context.Context, id string, patch *entity.DeploymentPatch) (*entity.Deployment, error) {
	if id == "" {
		return nil, errors.DeploymentIDNotSpecified
	}
	if patch.IsEmpty() {
		return nil, errors.NothingToUpdate
	}
	if patch.Status != nil && !patch.Status.IsValid() {
		return nil, errors.InvalidDeploymentStatus
	}

	body := patch
	if current := c.currentDeployment(ctx, id); current != nil {
		body = entity.PatchFromDeployment(current.Apply(patch))
	}

	outcome := <-c.store.Update(ctx, id, body)
	if outcome.Err != nil {
		var apiErr gateway.APIError
		if pkgerrors.As(outcome.Err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, errors.DeploymentNotFound
		}
		return nil, outcome.Err
	}
	return outcome.Deployment, nil
}

// currentDeployment asks the API for the record and falls back to the store's
// copy. It never changes store status.
func (c *Controller) currentDeployment(ctx context.Context, id string) *entity.Deployment {
	current, err := c.apiGtwy.GetDeployment(ctx, id)
	if err == nil && current != nil {
		return current
	}
	c.logger.Debug("deployment lookup failed", zap.String("id", id), zap.Error(err))
	if cached, ok := c.store.Find(id); ok {
		return cached
	}
	return nil
}

// ensureLoaded fetches once if the store has never been filled this session
func (c *Controller) ensureLoaded(ctx context.Context) error {
	if c.store.State().Status != entity.REQUEST_IDLE {
		return nil
	}
	outcome := c.FetchDeployments(ctx)
	return outcome.Err
}
