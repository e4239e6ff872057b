package cmd

import (
	"context"
	"fmt"

	"github.com/deployboard/cli/entity"
	"github.com/deployboard/cli/ui"
)

// List fetches the deployments once and renders them
func (h *Handler) List(ctx context.Context, req *entity.CommandRequest) error {
	if ui.SupportsANSICodes() {
		ui.StartSpinner(&ui.SpinnerCfg{Message: ui.LoadingMessage, Writer: h.out})
	}
	outcome := h.ctrl.FetchDeployments(ctx)
	ui.StopSpinner("")

	fmt.Fprint(h.out, ui.RenderDashboard(h.ctrl.Store().State()))
	return outcome.Err
}
