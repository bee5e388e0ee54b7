package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"smpe-admin/internal/app"
	"smpe-admin/internal/paging"
)

type jobsOptions struct {
	userID int64
	id     int64
	page   int64
	size   int64
	dump   bool
}

func newJobsCmd(c *cli) *cobra.Command {
	opts := &jobsOptions{}

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List jobs with department and creator names",
		Long: `Lists jobs from the database. Display fields (deptName, creatorName) are
filled in by enrichment; lookups that fail are logged and left empty.

Examples:
  smpe-admin jobs                 # first page
  smpe-admin jobs --page 2 --size 2
  smpe-admin jobs --user 1        # jobs held by user 1
  smpe-admin jobs --id 13 --dump`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runJobs(cmd.Context(), c, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Int64Var(&opts.userID, "user", 0, "list the jobs held by this user id")
	cmd.Flags().Int64Var(&opts.id, "id", 0, "show a single job")
	cmd.Flags().Int64Var(&opts.page, "page", paging.DefaultCurrent, "page number, 1-based")
	cmd.Flags().Int64Var(&opts.size, "size", paging.DefaultSize, "page size")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "print Go values instead of JSON")
	cmd.MarkFlagsMutuallyExclusive("user", "id")

	return cmd
}

func runJobs(ctx context.Context, c *cli, opts *jobsOptions, out io.Writer) error {
	a, err := app.New(ctx, c.cfg, c.logger)
	if err != nil {
		return err
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_ = a.Close(stopCtx)
	}()

	var result any

	switch {
	case opts.userID != 0:
		result, err = a.Jobs.FindByUserID(ctx, opts.userID)
	case opts.id != 0:
		result, err = a.Jobs.FindByID(ctx, opts.id)
	default:
		result, err = a.Jobs.Page(ctx, paging.Query{Current: opts.page, Size: opts.size})
	}

	if err != nil {
		return err
	}

	return render(out, result, opts.dump)
}

func render(out io.Writer, v any, dump bool) error {
	if dump {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
		cfg.Fdump(out, v)

		return nil
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	return nil
}
