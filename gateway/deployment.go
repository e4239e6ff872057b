package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/deployboard/cli/entity"
)

func (g *Gateway) GetDeployments(ctx context.Context) ([]*entity.Deployment, error) {
	var resp []*entity.Deployment
	if err := g.NewRequest(http.MethodGet, "/deployments").Run(ctx, &resp); err != nil {
		return nil, err
	}
	if resp == nil {
		resp = []*entity.Deployment{}
	}
	return resp, nil
}

// GetDeployment looks up a single deployment by id
func (g *Gateway) GetDeployment(ctx context.Context, id string) (*entity.Deployment, error) {
	path := fmt.Sprintf("/deployments/%s", url.PathEscape(id))
	var resp entity.Deployment
	if err := g.NewRequest(http.MethodGet, path).Run(ctx, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *Gateway) CreateDeployment(ctx context.Context, req *entity.CreateDeploymentRequest) (*entity.Deployment, error) {
	var resp entity.Deployment
	if err := g.NewRequest(http.MethodPost, "/deployments").Body(req).Run(ctx, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (g *Gateway) UpdateDeployment(ctx context.Context, req *entity.UpdateDeploymentRequest) (*entity.Deployment, error) {
	path := fmt.Sprintf("/deployments/%s", url.PathEscape(req.ID))
	patch := req.Patch
	if patch == nil {
		patch = &entity.DeploymentPatch{}
	}
	var resp entity.Deployment
	if err := g.NewRequest(http.MethodPut, path).Body(patch).Run(ctx, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
