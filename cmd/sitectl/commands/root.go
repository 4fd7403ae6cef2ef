// Package commands implements sitectl, the site maintenance CLI.
package commands

import (
	"github.com/spf13/cobra"

	"hraktech_web/config"
	"hraktech_web/logging"
)

var (
	cfg      *config.Config
	logLevel string
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sitectl",
		Short:         "Maintenance tasks for the HRak Tech website",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Load()
			if logLevel == "" {
				logLevel = cfg.LogLevel
			}
			logging.Configure(logging.Config{Level: logLevel, Output: cmd.ErrOrStderr(), Pretty: true, Service: "sitectl"})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (default from LOG_LEVEL)")

	root.AddCommand(validateCmd(), exportCmd(), snapshotCmd(), publishAssetsCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
