package cmd

import (
	"context"
	"fmt"

	"github.com/deployboard/cli/constants"
	"github.com/deployboard/cli/entity"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	fmt.Fprintf(h.out, "deployboard version %s\n", constants.Version)
	if constants.Version == "source" {
		return nil
	}
	latest, err := h.ctrl.GetLatestVersion(ctx)
	if err != nil {
		return err
	}
	if latest != "" && latest != constants.Version && latest != "v"+constants.Version {
		fmt.Fprintln(h.out, "A newer version of deployboard is available, please update to:", latest)
	}
	return nil
}
