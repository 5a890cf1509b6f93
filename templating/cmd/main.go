// Binary template_dialect renders templates through a
// placeholder dialect using stamp info files, parameter
// files and explicit variable substitutions.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/byte4ever/template_dialect/templating"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "template_dialect",
		Short:         "Render templates with configurable placeholder delimiters",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRenderCmd(),
		newInspectCmd(),
		newStampCmd(),
		newStylesCmd(),
	)

	return root
}

// addDialectFlags binds the flags selecting the
// placeholder dialect to en.
func addDialectFlags(fl *pflag.FlagSet, en *templating.Engine) {
	fl.StringVar(
		&en.StartTag, "start_tag", "",
		"Start tag for template placeholders (default \"{{\")",
	)

	fl.StringVar(
		&en.EndTag, "end_tag", "",
		"End tag for template placeholders (default \"}}\")",
	)

	fl.StringVar(
		&en.Style, "style", "",
		"Predefined dialect name, see the styles command",
	)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
