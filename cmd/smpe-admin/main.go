// Package main provides the CLI entrypoint for smpe-admin.
//
// smpe-admin serves the system module of the admin backend:
//   - jobs: query jobs with their display fields enriched
//   - check: validate an enrichment declaration file
//   - gen accessors: generate accessor registrations for entity structs
//   - schedule: run the task scheduler until interrupted
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"smpe-admin/internal/config"
	"smpe-admin/internal/logging"
)

// cli carries the state shared by all commands.
type cli struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "smpe-admin",
		Short:         "Admin backend system module with result enrichment",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}

			if c.verbose {
				cfg.Logging.Level = "debug"
			}

			logger, err := logging.New(cfg.Logging)
			if err != nil {
				return err
			}

			c.cfg = cfg
			c.logger = logger

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to the configuration file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newJobsCmd(c),
		newCheckCmd(c),
		newGenCmd(c),
		newScheduleCmd(c),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
