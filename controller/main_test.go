package controller_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/deployboard/cli/controller"
	"github.com/deployboard/cli/entity"
	"github.com/deployboard/cli/errors"
	"github.com/deployboard/cli/gateway"
	"github.com/deployboard/cli/poller"
	"github.com/stretchr/testify/require"
)

// fakeGateway keeps deployments in memory the way the API server does
type fakeGateway struct {
	mu        sync.Mutex
	items     []*entity.Deployment
	fetchErr  error
	lookupErr error
	fetches   int
	lookups   int
	creates   []*entity.CreateDeploymentRequest
	updates   []*entity.UpdateDeploymentRequest
	nextID    int
}

func (f *fakeGateway) GetDeployments(ctx context.Context) ([]*entity.Deployment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]*entity.Deployment, 0, len(f.items))
	for _, d := range f.items {
		out = append(out, d.Copy())
	}
	return out, nil
}

func (f *fakeGateway) GetDeployment(ctx context.Context, id string) (*entity.Deployment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, d := range f.items {
		if d.ID == id {
			return d.Copy(), nil
		}
	}
	return nil, gateway.APIError{StatusCode: http.StatusNotFound, Message: "Deployment not found"}
}

func (f *fakeGateway) CreateDeployment(ctx context.Context, req *entity.CreateDeploymentRequest) (*entity.Deployment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, req)
	f.nextID++
	d := &entity.Deployment{
		ID:          fmt.Sprintf("new-%d", f.nextID),
		AppName:     req.AppName,
		Environment: req.Environment,
		Branch:      req.Branch,
		CommitHash:  req.CommitHash,
		Status:      req.Status,
		StartedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	if req.StartedAt != nil {
		d.StartedAt = *req.StartedAt
	}
	f.items = append(f.items, d)
	return d.Copy(), nil
}

func (f *fakeGateway) UpdateDeployment(ctx context.Context, req *entity.UpdateDeploymentRequest) (*entity.Deployment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, req)
	for i, d := range f.items {
		if d.ID == req.ID {
			f.items[i] = d.Apply(req.Patch)
			return f.items[i].Copy(), nil
		}
	}
	return nil, gateway.APIError{StatusCode: http.StatusNotFound, Message: "Deployment not found"}
}

func (f *fakeGateway) setItems(items ...*entity.Deployment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = items
}

func (f *fakeGateway) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func (f *fakeGateway) lookupCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lookups
}

func (f *fakeGateway) lastUpdate() *entity.UpdateDeploymentRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.updates) == 0 {
		return nil
	}
	return f.updates[len(f.updates)-1]
}

type fakeReleases struct {
	tag string
	err error
}

func (f *fakeReleases) GetLatestReleaseTag(ctx context.Context, owner string, repo string) (string, error) {
	return f.tag, f.err
}

type manualTicker struct {
	c chan time.Time
}

func (m *manualTicker) Chan() <-chan time.Time { return m.c }
func (m *manualTicker) Stop()                  {}

func testConfig() *entity.RootConfig {
	return &entity.RootConfig{
		APIURL:       "http://localhost:8080/api",
		DashboardURL: "http://localhost:3000",
		PollInterval: 30 * time.Second,
	}
}

func newController(t *testing.T, gtwy *fakeGateway, opts ...controller.Option) *controller.Controller {
	t.Helper()
	opts = append([]controller.Option{
		controller.WithGateway(gtwy),
		controller.WithReleaseGateway(&fakeReleases{tag: "v1.2.3"}),
		controller.WithBrowser(func(string) error { return nil }),
		controller.WithTicker(func(time.Duration) poller.Ticker {
			return &manualTicker{c: make(chan time.Time)}
		}),
	}, opts...)
	c := controller.New(testConfig(), nil, opts...)
	t.Cleanup(func() {
		c.Close()
		c.Store().Wait()
	})
	return c
}

func deployment(id, app, env, branch string, status entity.DeploymentStatus, startedAt time.Time) *entity.Deployment {
	return &entity.Deployment{
		ID:          id,
		AppName:     app,
		Environment: env,
		Branch:      branch,
		Status:      status,
		StartedAt:   startedAt,
	}
}

func TestGetLatestVersion(t *testing.T) {
	c := newController(t, &fakeGateway{})
	tag, err := c.GetLatestVersion(context.Background())
	require.NoError(t, err)
	require.Equal(t, "v1.2.3", tag)
}

func TestGetLatestVersionFailure(t *testing.T) {
	c := newController(t, &fakeGateway{}, controller.WithReleaseGateway(&fakeReleases{err: context.DeadlineExceeded}))
	_, err := c.GetLatestVersion(context.Background())
	require.Equal(t, errors.ReleaseCheckFailed, err)
}
