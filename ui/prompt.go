package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/deployboard/cli/entity"
	"github.com/manifoldco/promptui"
)

// PromptText asks for a required value. defaultValue is pre-filled when set.
func PromptText(text string, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:   text,
		Default: defaultValue,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("Required")
			}
			return nil
		},
	}
	return prompt.Run()
}

func PromptStatus(label string) (entity.DeploymentStatus, error) {
	prompt := promptui.Select{
		Label: label,
		Items: entity.DeploymentStatuses,
		Templates: &promptui.SelectTemplates{
			Active:   `{{ . | underline }}`,
			Inactive: `{{ . }}`,
			Selected: fmt.Sprintf("%s Status: {{ . | blue | bold }} ", GreenText("✔")),
		},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return entity.DeploymentStatuses[i], nil
}
