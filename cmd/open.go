package cmd

import (
	"context"
	"fmt"

	"github.com/deployboard/cli/entity"
	"github.com/deployboard/cli/ui"
)

func (h *Handler) Open(ctx context.Context, req *entity.CommandRequest) error {
	page := ""
	if len(req.Args) > 0 {
		page = req.Args[0]
	}
	url, err := h.ctrl.OpenInBrowser(ctx, page)
	if err != nil {
		return err
	}
	fmt.Fprintf(h.out, "Opening %s\n", ui.GrayText(url))
	return nil
}
