package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/byte4ever/template_dialect/stamper"
)

type stampOptions struct {
	stampInfoFiles []string
	output         string
	format         string
	formatFile     string
}

func newStampCmd() *cobra.Command {
	var opts stampOptions

	cmd := &cobra.Command{
		Use:   "stamp",
		Short: "Substitute {VAR} workspace status placeholders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := opts.run()
			if err != nil {
				return err
			}

			if opts.output != "" {
				return nil
			}

			if _, err := cmd.OutOrStdout().Write(
				[]byte(result),
			); err != nil {
				return fmt.Errorf(
					"stamp: writing to stdout: %w", err,
				)
			}

			return nil
		},
	}

	fl := cmd.Flags()

	fl.StringArrayVar(
		&opts.stampInfoFiles, "stamp-info-file", nil,
		"path to workspace status file (repeatable)",
	)

	fl.StringVar(
		&opts.output, "output", "",
		"output file path (default: stdout)",
	)

	fl.StringVar(
		&opts.formatFile, "format-file", "",
		"file containing stamp variable placeholders",
	)

	fl.StringVar(
		&opts.format, "format", "",
		"format string containing stamp variables",
	)

	cmd.MarkFlagsMutuallyExclusive("format", "format-file")

	return cmd
}

// run stamps the format and writes it to the output file
// when one is set.
func (so *stampOptions) run() (string, error) {
	const errCtx = "stamp"

	format := so.format

	if so.formatFile != "" {
		content, err := os.ReadFile( //nolint:gosec // path from CLI flag
			so.formatFile,
		)
		if err != nil {
			return "", fmt.Errorf(
				"%s: reading format file: %w",
				errCtx, err,
			)
		}

		format = string(content)
	}

	result, err := stamper.Stamp(so.stampInfoFiles, format)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	if so.output != "" {
		err = os.WriteFile( //nolint:gosec // path from CLI flag
			so.output, []byte(result), 0o666,
		)
		if err != nil {
			return "", fmt.Errorf(
				"%s: writing output: %w",
				errCtx, err,
			)
		}
	}

	return result, nil
}
