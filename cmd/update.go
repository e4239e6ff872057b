package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/deployboard/cli/entity"
	"github.com/deployboard/cli/errors"
	"github.com/deployboard/cli/ui"
	"github.com/spf13/pflag"
)

func (h *Handler) Update(ctx context.Context, req *entity.CommandRequest) error {
	if len(req.Args) == 0 {
		return errors.DeploymentIDNotSpecified
	}
	id := req.Args[0]

	patch, err := patchFromFlags(req.Cmd.Flags())
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		status, err := ui.PromptStatus("New status")
		if err != nil {
			return err
		}
		patch.Status = &status
	}
	if patch.Status != nil && patch.Status.IsTerminal() && patch.CompletedAt == nil {
		now := time.Now()
		patch.CompletedAt = &now
	}

	deployment, err := h.ctrl.UpdateDeployment(ctx, id, patch)
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "%s Updated deployment %s\n\n", ui.GreenText("✔"), ui.Bold(deployment.ID))
	fmt.Fprint(h.out, ui.DeploymentCard(deployment))
	return nil
}

func patchFromFlags(flags *pflag.FlagSet) (*entity.DeploymentPatch, error) {
	patch := &entity.DeploymentPatch{}
	for name, field := range map[string]**string{
		"app":    &patch.AppName,
		"env":    &patch.Environment,
		"branch": &patch.Branch,
		"commit": &patch.CommitHash,
	} {
		if !flags.Changed(name) {
			continue
		}
		value, err := flags.GetString(name)
		if err != nil {
			return nil, err
		}
		*field = &value
	}

	if flags.Changed("status") {
		value, err := flags.GetString("status")
		if err != nil {
			return nil, err
		}
		status := entity.DeploymentStatus(value)
		if !status.IsValid() {
			return nil, errors.InvalidDeploymentStatus
		}
		patch.Status = &status
	}

	if flags.Changed("completed") {
		value, err := flags.GetString("completed")
		if err != nil {
			return nil, err
		}
		completedAt, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return nil, fmt.Errorf("%s\nUse RFC 3339, e.g. %s", ui.RedText("Invalid completion time."), ui.Bold("2024-05-01T15:04:05Z"))
		}
		patch.CompletedAt = &completedAt
	}
	return patch, nil
}
