package errors

import (
	"fmt"

	"github.com/deployboard/cli/ui"
)

type DeployboardError error

var (
	ConfigReadFailed            DeployboardError = fmt.Errorf("%s\nCheck the file passed with %s or remove it to use defaults.", ui.RedText("There was a problem reading the config file."), ui.Bold("--config"))
	InvalidAPIURL               DeployboardError = fmt.Errorf("%s\nIt should look like %s", ui.RedText("The API URL is not valid."), ui.Bold("http://localhost:8080/api"))
	InvalidPollInterval         DeployboardError = fmt.Errorf("%s", ui.RedText("The poll interval must be greater than zero."))
	InvalidDeploymentStatus     DeployboardError = fmt.Errorf("%s\nUse one of queued, in-progress, successful or failed.", ui.RedText("Unknown deployment status."))
	DeploymentIDNotSpecified    DeployboardError = fmt.Errorf("%s\nRun %s", ui.RedText("Specify the deployment to update."), ui.Bold("deployboard update <id>"))
	DeploymentNotFound          DeployboardError = fmt.Errorf("%s", ui.RedText("Deployment not found."))
	NothingToUpdate             DeployboardError = fmt.Errorf("%s", ui.RedText("Nothing to update. Pass at least one field to change."))
	WebhookEventNotSupported    DeployboardError = fmt.Errorf("%s\nOnly %s and %s events are relayed.", ui.RedText("Unsupported GitHub event."), ui.Bold("deployment"), ui.Bold("deployment_status"))
	WebhookPayloadInvalid       DeployboardError = fmt.Errorf("%s", ui.RedText("The GitHub webhook payload could not be parsed."))
	ReleaseCheckFailed          DeployboardError = fmt.Errorf("%s", ui.RedText("Could not check for a newer version."))
	InvalidRequestTimeout       DeployboardError = fmt.Errorf("%s\nUse a duration such as %s, or %s for none.", ui.RedText("The request timeout is not valid."), ui.Bold("10s"), ui.Bold("0s"))
	UnknownConfigKey            DeployboardError = fmt.Errorf("%s\nKnown keys: apiUrl, dashboardUrl, pollInterval, requestTimeout, logFile, logLevel", ui.RedText("Unknown config key."))
	ConfigArgumentsNotSpecified DeployboardError = fmt.Errorf("%s\nRun %s", ui.RedText("Specify the key and the value to set."), ui.Bold("deployboard config set <key> <value>"))
	RelayArgumentsNotSpecified  DeployboardError = fmt.Errorf("%s\nRun %s", ui.RedText("Specify the GitHub event name and the payload file."), ui.Bold("deployboard relay <event> <payload.json>"))
)
