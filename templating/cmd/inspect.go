package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/byte4ever/template_dialect/templating"
)

func newInspectCmd() *cobra.Command {
	var (
		en      templating.Engine
		tplPath string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List the placeholders of a template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.OutOrStdout(), &en, tplPath)
		},
	}

	fl := cmd.Flags()

	addDialectFlags(fl, &en)

	fl.StringVar(
		&tplPath, "template", "",
		"Input template file path",
	)

	_ = cmd.MarkFlagRequired("template") //nolint:errcheck // flag defined above

	return cmd
}

// runInspect prints one line per placeholder: its ordinal,
// its name and, when declared, its default.
func runInspect(
	out io.Writer,
	en *templating.Engine,
	tplPath string,
) error {
	const errCtx = "inspecting template"

	di, err := en.Dialect()
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	content, err := os.ReadFile(tplPath) //nolint:gosec // path from CLI flag
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	tpl, err := di.Compile(string(content))
	if err != nil {
		return fmt.Errorf("%s: %s: %w", errCtx, tplPath, err)
	}

	for idx, ph := range tpl.Placeholders() {
		line := fmt.Sprintf("%d\t%s", idx, ph.Name)
		if ph.HasDefault {
			line += "\t=" + ph.Default
		}

		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	return nil
}
