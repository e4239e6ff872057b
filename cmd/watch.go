package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/deployboard/cli/entity"
	"github.com/deployboard/cli/ui"
)

// Watch keeps the dashboard on screen, re-rendering on every store change
// until interrupted
func (h *Handler) Watch(ctx context.Context, req *entity.CommandRequest) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	interactive := ui.SupportsANSICodes()
	err := h.ctrl.WatchDeployments(ctx, func(state entity.DeploymentsState) {
		h.renderState(state, interactive)
	})
	ui.StopSpinner("")
	return err
}

func (h *Handler) renderState(state entity.DeploymentsState, interactive bool) {
	if !interactive {
		fmt.Fprint(h.out, ui.RenderDashboard(state))
		return
	}
	if state.Status == entity.REQUEST_LOADING {
		fmt.Fprint(h.out, ui.ClearScreen())
		ui.StartSpinner(&ui.SpinnerCfg{Message: ui.LoadingMessage, Writer: h.out})
		return
	}
	ui.StopSpinner("")
	fmt.Fprint(h.out, ui.ClearScreen()+ui.RenderDashboard(state))
}
