package cmd

import (
	"context"
	"fmt"

	"github.com/deployboard/cli/configs"
	"github.com/deployboard/cli/entity"
	"github.com/deployboard/cli/errors"
	"github.com/deployboard/cli/ui"
	"go.uber.org/zap"
)

// ConfigSet writes one key to the config file. The file is reloaded so flags
// given for this run are not persisted.
func (h *Handler) ConfigSet(ctx context.Context, req *entity.CommandRequest) error {
	if len(req.Args) < 2 {
		return errors.ConfigArgumentsNotSpecified
	}
	key, value := req.Args[0], req.Args[1]

	cfgs, err := configs.New(h.configPath)
	if err != nil {
		return err
	}
	if _, err := cfgs.SetValue(key, value); err != nil {
		return err
	}
	h.logger.Info("config updated", zap.String("key", key), zap.String("config", cfgs.ConfigPath()))

	fmt.Fprintf(h.out, "%s Set %s to %s in %s\n", ui.GreenText("✔"), ui.Bold(key), ui.Bold(value), ui.GrayText(cfgs.ConfigPath()))
	return nil
}
