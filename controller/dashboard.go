package controller

import (
	"context"

	"github.com/deployboard/cli/entity"
	"github.com/deployboard/cli/poller"
	"go.uber.org/zap"
)

// NewPoller builds a poller that refreshes the store on the configured
// interval. Fetches keep the values of ctx but not its cancellation, so
// neither stopping the poller nor cancelling ctx aborts a request.
func (c *Controller) NewPoller(ctx context.Context) *poller.Poller {
	fetchCtx := context.WithoutCancel(ctx)
	fetch := func() {
		c.store.FetchAll(fetchCtx)
	}
	return poller.New(c.cfg.PollInterval, fetch,
		poller.WithTicker(c.ticker),
		poller.WithLogger(c.logger),
	)
}

// WatchDeployments mounts the dashboard: render is called with every store
// state until ctx is done, while the store is polled in the background.
func (c *Controller) WatchDeployments(ctx context.Context, render func(entity.DeploymentsState)) error {
	states, unsubscribe := c.store.Subscribe()
	defer unsubscribe()

	p := c.NewPoller(ctx)
	p.Start()
	defer p.Stop()

	c.logger.Info("dashboard mounted", zap.Duration("interval", c.cfg.PollInterval))
	defer c.logger.Info("dashboard unmounted")

	for {
		select {
		case <-ctx.Done():
			return nil
		case state, ok := <-states:
			if !ok {
				return nil
			}
			render(state)
		}
	}
}
