package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"smpe-admin/internal/app"
	"smpe-admin/internal/diagnostic"
	"smpe-admin/internal/mapping"
	"smpe-admin/internal/system"
)

var errCheckFailed = errors.New("declaration check failed")

func newCheckCmd(c *cli) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "check [declarations.yaml]",
		Short: "Validate an enrichment declaration file",
		Long: `Validates a declaration file against the registered entity accessors and
lookup functions. Without an argument the file named by the configuration is
checked, or the compiled-in declarations when there is none.

With --defaults the compiled-in declarations are printed as YAML, a starting
point for a declaration file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if defaults {
				data, err := mapping.Marshal(system.DefaultFile())
				if err != nil {
					return err
				}

				_, err = out.Write(data)

				return err
			}

			path := c.cfg.Declarations
			if len(args) == 1 {
				path = args[0]
			}

			return runCheck(out, path)
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "print the compiled-in declarations")

	return cmd
}

func runCheck(out io.Writer, path string) error {
	accessors, lookups, err := app.NewRegistries()
	if err != nil {
		return err
	}

	f := system.DefaultFile()
	name := "compiled-in declarations"

	if path != "" {
		if f, err = mapping.LoadFile(path); err != nil {
			return err
		}

		name = path
	}

	diags := mapping.Validate(f, accessors, lookups)
	printDiagnostics(out, diags)

	if diags.HasErrors() {
		return fmt.Errorf("%w: %s: %d error(s)", errCheckFailed, name, len(diags.Errors))
	}

	fmt.Fprintf(out, "%s: %d queries OK\n", name, len(f.Queries))

	return nil
}

func printDiagnostics(out io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
	}
}
