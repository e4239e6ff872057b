package cmd

import (
	"context"
	"fmt"

	"github.com/deployboard/cli/ui"
	"go.uber.org/zap"
)

func (h *Handler) Panic(ctx context.Context, panicErr string, stacktrace string, command string, args []string) error {
	ui.StopSpinner("")
	h.logger.Error("command panicked",
		zap.String("command", command),
		zap.Strings("args", args),
		zap.String("panic", panicErr),
		zap.String("stacktrace", stacktrace),
	)
	_ = h.logger.Sync()
	fmt.Fprintf(h.out, "%s\n%s\n", ui.RedText("Something went wrong: "+panicErr), ui.GrayText("Details were written to the log file."))
	return nil
}
