package main

import (
	"github.com/spf13/cobra"

	"github.com/byte4ever/template_dialect/templating"
)

type renderOptions struct {
	engine     templating.Engine
	variables  []string
	imports    []string
	template   string
	output     string
	executable bool
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Expand a template file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return opts.engine.Expand(
				opts.template,
				opts.output,
				opts.variables,
				opts.imports,
				opts.executable,
			)
		},
	}

	fl := cmd.Flags()

	addDialectFlags(fl, &opts.engine)

	fl.StringArrayVar(
		&opts.engine.StampInfoFiles, "stamp_info_file", nil,
		"Stamp info file path (repeatable)",
	)

	fl.StringArrayVar(
		&opts.engine.ParamFiles, "params", nil,
		"Parameter file path: .json, .yaml, .toml or .env (repeatable)",
	)

	fl.StringArrayVar(
		&opts.variables, "variable", nil,
		"Variable in NAME=VALUE format (repeatable)",
	)

	fl.StringArrayVar(
		&opts.imports, "imports", nil,
		"Import in NAME=filename format (repeatable)",
	)

	fl.StringVar(
		&opts.template, "template", "",
		"Input template file path (stdin if empty)",
	)

	fl.StringVar(
		&opts.output, "output", "",
		"Output file path (stdout if empty)",
	)

	fl.BoolVar(
		&opts.executable, "executable", false,
		"Set executable bit on output file",
	)

	return cmd
}
