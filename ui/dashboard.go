package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/deployboard/cli/entity"
)

const (
	DashboardTitle = "Deployment Dashboard"
	LoadingMessage = "Loading deployments..."
	EmptyMessage   = "No deployments yet."

	// TimestampLayout renders like "Jan 2, 2006, 3:04:05 PM"
	TimestampLayout = "Jan 2, 2006, 3:04:05 PM"

	maxBranchLength = 40
)

// StatusBadge renders a deployment status coloured by its meaning
func StatusBadge(status entity.DeploymentStatus) string {
	label := "[" + string(status) + "]"
	switch status {
	case entity.STATUS_IN_PROGRESS:
		return BlueText(label)
	case entity.STATUS_SUCCESSFUL:
		return GreenText(label)
	case entity.STATUS_FAILED:
		return RedText(label)
	default:
		return label
	}
}

func FormatTimestamp(t time.Time) string {
	return t.Local().Format(TimestampLayout)
}

// DeploymentCard renders a single deployment
func DeploymentCard(d *entity.Deployment) string {
	pairs := []Pair{
		{Key: "Environment", Value: d.Environment},
		{Key: "Branch", Value: Truncate(d.Branch, maxBranchLength)},
	}
	if d.CommitHash != "" {
		pairs = append(pairs, Pair{Key: "Commit", Value: d.CommitHash})
	}
	pairs = append(pairs, Pair{Key: "Started", Value: FormatTimestamp(d.StartedAt)})
	if d.CompletedAt != nil && !d.CompletedAt.IsZero() {
		pairs = append(pairs, Pair{Key: "Completed", Value: FormatTimestamp(*d.CompletedAt)})
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n", Bold(d.AppName), StatusBadge(d.Status)))
	sb.WriteString(PrefixLines(KeyValues(pairs), "  "))
	return sb.String()
}

// RenderDashboard renders a full view of the store state. Loading wins over
// everything else, then failure, then the deployment list.
func RenderDashboard(state entity.DeploymentsState) string {
	switch state.Status {
	case entity.REQUEST_LOADING:
		return LoadingMessage + "\n"
	case entity.REQUEST_FAILED:
		return RedText("Error: "+state.Error) + "\n"
	}

	var sb strings.Builder
	sb.WriteString(Bold(DashboardTitle) + "\n\n")
	if len(state.Items) == 0 {
		sb.WriteString(GrayText(EmptyMessage) + "\n")
		return sb.String()
	}
	for i, d := range state.Items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(DeploymentCard(d))
	}
	return sb.String()
}
