package cmd

import (
	"context"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/deployboard/cli/entity"
	"github.com/deployboard/cli/errors"
	"github.com/deployboard/cli/ui"
)

// Relay forwards a saved GitHub webhook payload. Use "-" to read stdin.
func (h *Handler) Relay(ctx context.Context, req *entity.CommandRequest) error {
	if len(req.Args) < 2 {
		return errors.RelayArgumentsNotSpecified
	}
	event, path := req.Args[0], req.Args[1]

	var payload []byte
	var err error
	if path == "-" {
		payload, err = ioutil.ReadAll(os.Stdin)
	} else {
		payload, err = ioutil.ReadFile(path)
	}
	if err != nil {
		return err
	}

	res, err := h.ctrl.Relay(ctx, &entity.RelayRequest{Event: event, Payload: payload})
	if err != nil {
		return err
	}
	if res.Skipped {
		fmt.Fprintf(h.out, "%s Skipped: %s\n", ui.YellowText("•"), res.Reason)
		return nil
	}

	verb := "Created"
	if res.Action == entity.ACTION_UPDATE {
		verb = "Updated"
	}
	fmt.Fprintf(h.out, "%s %s deployment %s\n\n", ui.GreenText("✔"), verb, ui.Bold(res.Deployment.ID))
	fmt.Fprint(h.out, ui.DeploymentCard(res.Deployment))
	return nil
}
