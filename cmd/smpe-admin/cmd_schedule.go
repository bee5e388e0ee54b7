package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"smpe-admin/internal/app"
	"smpe-admin/internal/quartz"
)

func newScheduleCmd(c *cli) *cobra.Command {
	var (
		runID int64
		list  bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run the task scheduler until interrupted",
		Long: `Loads the task definitions of sys_quartz_job and runs them on their cron
schedules until SIGINT or SIGTERM. Paused tasks are loaded but not run.

  --list    print the tasks and exit
  --run ID  run one task immediately and exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := app.New(ctx, c.cfg, c.logger)
			if err != nil {
				return err
			}

			defer func() {
				stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := a.Close(stopCtx); err != nil {
					c.logger.Warn("shutdown", zap.Error(err))
				}
			}()

			switch {
			case runID != 0:
				return runTaskNow(ctx, a, runID, cmd.OutOrStdout())
			case list:
				return listTasks(ctx, a, cmd.OutOrStdout())
			}

			if !c.cfg.Scheduler.Enabled {
				return errors.New("scheduler is disabled in the configuration")
			}

			if err := a.StartScheduler(ctx); err != nil {
				return err
			}

			c.logger.Info("scheduler started")
			<-ctx.Done()
			c.logger.Info("scheduler stopping")

			return nil
		},
	}

	cmd.Flags().Int64Var(&runID, "run", 0, "run the task with this id once and exit")
	cmd.Flags().BoolVar(&list, "list", false, "list the tasks and exit")
	cmd.MarkFlagsMutuallyExclusive("run", "list")

	return cmd
}

func runTaskNow(ctx context.Context, a *app.App, id int64, out io.Writer) error {
	if err := a.Scheduler.Restore(ctx, a.QuartzJobs); err != nil {
		a.Logger.Warn("some tasks were not loaded", zap.Error(err))
	}

	run, err := a.Scheduler.RunJobNow(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s finished in %s: %v\n", run.Key, run.Duration, run.Result)

	return nil
}

func listTasks(ctx context.Context, a *app.App, out io.Writer) error {
	tasks, err := a.QuartzJobs.FindAll(ctx)
	if err != nil {
		return err
	}

	for _, t := range tasks {
		state := "active"
		if t.IsPause {
			state = "paused"
		}

		fmt.Fprintf(out, "%-14s %-20q %-16s %s.%s(%q) by %s [%s]\n",
			quartz.JobKey(t.ID), t.JobName, t.CronExpression, t.BeanName, t.MethodName, t.Params,
			displayName(t.CreatorName), state)
	}

	return nil
}

func displayName(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
