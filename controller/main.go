package controller

import (
	"context"
	"time"

	"github.com/deployboard/cli/entity"
	"github.com/deployboard/cli/gateway"
	"github.com/deployboard/cli/gateway/github"
	"github.com/deployboard/cli/poller"
	"github.com/deployboard/cli/store"
	"github.com/pkg/browser"
	"go.uber.org/zap"
)

type Controller struct {
	cfg     *entity.RootConfig
	store   *store.Store
	apiGtwy apiGateway
	ghGtwy  releaseGateway
	logger  *zap.Logger
	openURL func(url string) error
	ticker  poller.TickerFunc
	now     func() time.Time
}

// apiGateway is the deployments API as the controller uses it
type apiGateway interface {
	store.Gateway
	GetDeployment(ctx context.Context, id string) (*entity.Deployment, error)
}

type releaseGateway interface {
	GetLatestReleaseTag(ctx context.Context, owner string, repo string) (string, error)
}

type Option func(*Controller)

// WithGateway swaps the deployments API client
func WithGateway(g apiGateway) Option {
	return func(c *Controller) {
		c.apiGtwy = g
	}
}

func WithReleaseGateway(g releaseGateway) Option {
	return func(c *Controller) {
		c.ghGtwy = g
	}
}

func WithBrowser(open func(url string) error) Option {
	return func(c *Controller) {
		c.openURL = open
	}
}

func WithTicker(fn poller.TickerFunc) Option {
	return func(c *Controller) {
		c.ticker = fn
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

func New(cfg *entity.RootConfig, logger *zap.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		cfg:     cfg,
		logger:  logger,
		openURL: browser.OpenURL,
		ticker:  poller.NewTimeTicker,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.apiGtwy == nil {
		c.apiGtwy = gateway.New(cfg.APIURL,
			gateway.WithTimeout(cfg.RequestTimeout),
			gateway.WithLogger(logger.Named("gateway")),
		)
	}
	if c.ghGtwy == nil {
		c.ghGtwy = github.New(nil)
	}
	c.store = store.New(c.apiGtwy, logger)
	return c
}

// Store exposes the shared deployment store
func (c *Controller) Store() *store.Store {
	return c.store
}

// Close ends the store session. Requests still in flight settle as stale.
func (c *Controller) Close() {
	c.store.Reset()
}
