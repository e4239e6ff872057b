package controller

import (
	"context"

	"github.com/deployboard/cli/constants"
	"github.com/deployboard/cli/errors"
	"go.uber.org/zap"
)

func (c *Controller) GetLatestVersion(ctx context.Context) (string, error) {
	tag, err := c.ghGtwy.GetLatestReleaseTag(ctx, constants.GitHubOwner, constants.GitHubRepo)
	if err != nil {
		c.logger.Warn("release check failed", zap.Error(err))
		return "", errors.ReleaseCheckFailed
	}
	return tag, nil
}
