package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/deployboard/cli/entity"
	"github.com/deployboard/cli/errors"
	"github.com/deployboard/cli/lib/git"
	"github.com/deployboard/cli/ui"
)

func (h *Handler) Create(ctx context.Context, req *entity.CommandRequest) error {
	flags := req.Cmd.Flags()
	appName, _ := flags.GetString("app")
	environment, _ := flags.GetString("env")
	branch, _ := flags.GetString("branch")
	commit, _ := flags.GetString("commit")
	status, _ := flags.GetString("status")

	md := git.GetMetadata(".")
	if commit == "" {
		commit = md.Commit
	}

	var err error
	if appName, err = orPrompt(appName, "App name", md.RepoName); err != nil {
		return err
	}
	if environment, err = orPrompt(environment, "Environment", ""); err != nil {
		return err
	}
	if branch, err = orPrompt(branch, "Branch", md.Branch); err != nil {
		return err
	}

	createReq := &entity.CreateDeploymentRequest{
		AppName:     appName,
		Environment: environment,
		Branch:      branch,
		CommitHash:  strings.TrimSpace(commit),
		Status:      entity.DeploymentStatus(status),
	}
	if status == "" {
		createReq.Status = entity.STATUS_QUEUED
	}
	if !createReq.Status.IsValid() {
		return errors.InvalidDeploymentStatus
	}

	if ui.SupportsANSICodes() {
		ui.StartSpinner(&ui.SpinnerCfg{Message: "Creating deployment", Tokens: ui.RocketTokens, Writer: h.out})
	}
	deployment, err := h.ctrl.CreateDeployment(ctx, createReq)
	ui.StopSpinner("")
	if err != nil {
		return err
	}

	fmt.Fprintf(h.out, "%s Created deployment %s\n\n", ui.GreenText("✔"), ui.Bold(deployment.ID))
	fmt.Fprint(h.out, ui.DeploymentCard(deployment))
	return nil
}

// orPrompt keeps a value given on the command line and asks for it otherwise,
// suggesting fallback
func orPrompt(value string, label string, fallback string) (string, error) {
	value = strings.TrimSpace(value)
	if value != "" {
		return value, nil
	}
	answer, err := ui.PromptText(label, fallback)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}
