package cmd

import (
	"context"
	"io"
	"os"

	"github.com/deployboard/cli/configs"
	"github.com/deployboard/cli/controller"
	"github.com/deployboard/cli/entity"
	"github.com/deployboard/cli/logger"
	"github.com/deployboard/cli/ui"
	"go.uber.org/zap"
)

type Handler struct {
	ctrl       *controller.Controller
	cfg        *entity.RootConfig
	configPath string
	logger     *zap.Logger
	out        io.Writer
	opts       []controller.Option
}

func New(opts ...controller.Option) *Handler {
	return &Handler{
		logger: zap.NewNop(),
		out:    os.Stdout,
		opts:   opts,
	}
}

// SetOutput redirects everything the commands print
func (h *Handler) SetOutput(w io.Writer) {
	h.out = w
}

// Setup resolves configuration from the persistent flags and wires the
// controller. It runs before every command.
func (h *Handler) Setup(ctx context.Context, req *entity.CommandRequest) error {
	flags := req.Cmd.Flags()

	if noColor, err := flags.GetBool("no-color"); err == nil && noColor {
		ui.SetColor(false)
	}

	configPath, _ := flags.GetString("config")
	cfgs, err := configs.New(configPath)
	if err != nil {
		return err
	}
	if apiURL, _ := flags.GetString("api-url"); apiURL != "" {
		cfgs.SetAPIURL(apiURL)
	}
	if flags.Lookup("interval") != nil && flags.Changed("interval") {
		interval, err := flags.GetDuration("interval")
		if err != nil {
			return err
		}
		cfgs.SetPollInterval(interval)
	}

	cfg, err := cfgs.GetRootConfigs()
	if err != nil {
		return err
	}
	if err := cfgs.CreatePathIfNotExist(cfg.LogFile); err == nil {
		h.logger = logger.New(logger.Options{LogFile: cfg.LogFile, Level: cfg.LogLevel})
	}

	h.cfg = cfg
	h.configPath = cfgs.ConfigPath()
	h.ctrl = controller.New(cfg, h.logger, h.opts...)
	h.logger.Debug("configured",
		zap.String("command", req.Cmd.Name()),
		zap.String("apiUrl", cfg.APIURL),
		zap.String("config", cfgs.ConfigPath()),
	)
	return nil
}

// Teardown ends the store session and flushes the log
func (h *Handler) Teardown(ctx context.Context, req *entity.CommandRequest) error {
	if h.ctrl != nil {
		h.ctrl.Close()
	}
	_ = h.logger.Sync()
	return nil
}
