package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"smpe-admin/internal/analyze"
	"smpe-admin/internal/gen"
)

func newGenCmd(_ *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Code generation",
	}

	cmd.AddCommand(newGenAccessorsCmd())

	return cmd
}

func newGenAccessorsCmd() *cobra.Command {
	var (
		pkg      string
		out      string
		filename string
	)

	cmd := &cobra.Command{
		Use:   "accessors",
		Short: "Generate accessor registrations for the structs of a package",
		Long: `Loads a Go package and writes a file registering a typed getter and setter
for every exported field of every exported struct, named after the prop tag,
the json tag, or the field name in lower camel case.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			graph, err := analyze.NewAnalyzer().LoadPackages(pkg)
			if err != nil {
				return err
			}

			if len(graph.Packages) != 1 {
				return errors.New("--pkg must name exactly one package")
			}

			var info *analyze.PackageInfo
			for _, p := range graph.Packages {
				info = p
			}

			dir := out
			if dir == "" {
				dir = info.Dir
			}

			opts := gen.DefaultOptions()
			opts.DebugDir = dir

			if filename != "" {
				opts.Filename = filename
			}

			file, err := gen.Accessors(graph, info.Path, opts)
			if err != nil {
				return err
			}

			written, err := gen.WriteFiles([]gen.GeneratedFile{*file}, dir)
			if err != nil {
				return err
			}

			if len(written) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", filepath.Join(dir, file.Filename))
			}

			for _, name := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", filepath.Join(dir, name))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&pkg, "pkg", "./internal/entity", "package to generate accessors for")
	cmd.Flags().StringVar(&out, "out", "", "output directory (default: the package directory)")
	cmd.Flags().StringVar(&filename, "file", "", "output file name (default: accessors_gen.go)")

	return cmd
}
