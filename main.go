package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/deployboard/cli/cmd"
	"github.com/deployboard/cli/constants"
	"github.com/deployboard/cli/entity"
	"github.com/spf13/cobra"
)

// errReported marks a failure that was already printed to the user
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:           "deployboard",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Short:         "🚀 Watch your deployments roll out.",
	Long:          "deployboard polls the deployments API and keeps a live dashboard in your terminal.",
}

/* contextualize converts a HandlerFunction to a cobra function
 */
func contextualize(fn entity.HandlerFunction, panicFn entity.PanicFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx := context.Background()
		defer func() {
			if r := recover(); r != nil {
				panicFn(ctx, fmt.Sprint(r), string(debug.Stack()), cmd.Name(), args)
				err = errReported
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		if err := fn(ctx, req); err != nil {
			fmt.Println(err.Error())
			return errReported
		}
		return nil
	}
}

func init() {
	// Initializes all commands
	handler := cmd.New()

	rootCmd.PersistentFlags().String("api-url", "", "Deployments API base URL (default "+constants.DefaultAPIURL+")")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.deployboard/config.json)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentPreRunE = contextualize(handler.Setup, handler.Panic)
	rootCmd.PersistentPostRunE = contextualize(handler.Teardown, handler.Panic)

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Show a live dashboard of deployments",
		RunE:  contextualize(handler.Watch, handler.Panic),
	}
	watchCmd.Flags().Duration("interval", constants.DefaultPollInterval, "How often to poll for deployments")
	rootCmd.AddCommand(watchCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List deployments once",
		RunE:  contextualize(handler.List, handler.Panic),
	})

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Record a new deployment",
		RunE:  contextualize(handler.Create, handler.Panic),
	}
	addDeploymentFlags(createCmd)
	rootCmd.AddCommand(createCmd)

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a deployment",
		RunE:  contextualize(handler.Update, handler.Panic),
	}
	addDeploymentFlags(updateCmd)
	updateCmd.Flags().String("completed", "", "Completion time (RFC 3339)")
	rootCmd.AddCommand(updateCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "relay <event> <payload.json>",
		Short: "Forward a GitHub deployment webhook payload",
		Long:  "Translate a GitHub deployment or deployment_status webhook payload into a create or update. Pass - to read the payload from stdin.",
		RunE:  contextualize(handler.Relay, handler.Panic),
	})
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the deployboard config file",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Persist a config value (apiUrl, dashboardUrl, pollInterval, requestTimeout, logFile, logLevel)",
		RunE:  contextualize(handler.ConfigSet, handler.Panic),
	})
	rootCmd.AddCommand(configCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "open [page]",
		Short: "Open the web dashboard in your browser",
		RunE:  contextualize(handler.Open, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Get version of deployboard",
		RunE:  contextualize(handler.Version, handler.Panic),
	})
}

func addDeploymentFlags(c *cobra.Command) {
	c.Flags().String("app", "", "Application name")
	c.Flags().String("env", "", "Environment")
	c.Flags().String("branch", "", "Branch")
	c.Flags().String("commit", "", "Commit hash")
	c.Flags().String("status", "", "One of queued, in-progress, successful, failed")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if err == errReported {
			os.Exit(1)
		}
		if strings.Contains(err.Error(), "unknown command") {
			suggStr := "\nS"

			suggestions := rootCmd.SuggestionsFor(os.Args[1])
			if len(suggestions) > 0 {
				suggStr = fmt.Sprintf(" Did you mean \"%s\"?\nIf not, s", suggestions[0])
			}

			fmt.Printf("Unknown command \"%s\" for \"%s\".%s"+
				"ee \"deployboard --help\" for available commands.\n",
				os.Args[1], rootCmd.CommandPath(), suggStr)
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
