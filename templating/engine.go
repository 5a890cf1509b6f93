package templating

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/byte4ever/template_dialect/dialect"
	"github.com/byte4ever/template_dialect/paramfile"
	"github.com/byte4ever/template_dialect/stamper"
)

// ErrUnknownStyle is returned when Engine.Style names no
// predefined dialect.
var ErrUnknownStyle = errors.New("unknown dialect style")

// Engine expands templates using stamp info files,
// parameter files and explicit variables.
type Engine struct {
	// StartTag and EndTag delimit placeholders. Setting
	// either one overrides Style; the other falls back to
	// its double-brace default.
	StartTag string
	EndTag   string

	// Style names a predefined dialect (see
	// dialect.StyleNames).
	Style string

	StampInfoFiles []string
	ParamFiles     []string
}

// Expand reads a template, substitutes variables, and
// writes the result. If tplPath is empty it reads from
// stdin; if outPath is empty it writes to stdout. If
// executable is true the output file receives mode 0777
// instead of 0666.
//
// Processing order:
//  1. Load stamp files into a stamp map.
//  2. Merge parameter files over the stamps.
//  3. For each variable NAME=VALUE, expand VALUE against
//     stamps using single-brace tags, then store as both
//     "NAME" and "variables.NAME" in context.
//  4. For each import NAME=filename, read the file, render
//     it against context with the engine dialect, then
//     render again against stamps with the brace dialect,
//     and store as "imports.NAME" in context.
//  5. Render the template against context.
func (en *Engine) Expand(
	tplPath string,
	outPath string,
	vars []string,
	imports []string,
	executable bool,
) (retErr error) {
	const errCtx = "expanding template"

	di, err := en.Dialect()
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	stamps, err := stamper.LoadStamps(en.StampInfoFiles)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	params, err := paramfile.LoadAll(en.ParamFiles)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	// Stamps form the base context; parameter files,
	// variables and imports override them.
	ctx := paramfile.Merge(stamps, params)

	if err := en.resolveVars(vars, stamps, ctx); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := en.resolveImports(di, imports, stamps, ctx); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	tplContent, err := en.readTemplate(tplPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	tpl, err := di.Compile(string(tplContent))
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	out, closer, err := en.openOutput(outPath, executable)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if closer != nil {
		defer func() {
			if err := closer(); err != nil {
				retErr = errors.Join(
					retErr, fmt.Errorf("%s: %w", errCtx, err),
				)
			}
		}()
	}

	if _, err := io.WriteString(out, tpl.Execute(ctx)); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// Dialect returns the placeholder dialect the engine
// renders with: explicit tags first, then Style, then
// double braces.
func (en *Engine) Dialect() (*dialect.Dialect, error) {
	if en.StartTag != "" || en.EndTag != "" {
		startTag := en.StartTag
		if startTag == "" {
			startTag = "{{"
		}

		endTag := en.EndTag
		if endTag == "" {
			endTag = "}}"
		}

		return dialect.New(startTag, endTag), nil
	}

	if en.Style != "" {
		di, ok := dialect.Lookup(en.Style)
		if !ok {
			return nil, fmt.Errorf(
				"%w: %s (known: %s)",
				ErrUnknownStyle, en.Style,
				strings.Join(dialect.StyleNames(), ", "),
			)
		}

		return di, nil
	}

	return dialect.Mustache, nil
}

// resolveVars processes --variable flags. Each variable
// value is expanded against stamps using single-brace
// tags, then stored as both "NAME" and "variables.NAME".
func (en *Engine) resolveVars(
	vars []string,
	stamps dialect.Params,
	ctx dialect.Params,
) error {
	const errCtx = "resolving variables"

	for _, vr := range vars {
		name, value, found := strings.Cut(vr, "=")
		if !found {
			return fmt.Errorf(
				"%s: variable must be VAR=value, got %s",
				errCtx, vr,
			)
		}

		val := expandStamps(value, stamps)

		ctx[name] = val
		ctx["variables."+name] = val
	}

	return nil
}

// resolveImports processes --imports flags. Each import
// file is read, rendered against ctx with the engine
// dialect, then rendered against stamps with the brace
// dialect, and stored as "imports.NAME".
func (en *Engine) resolveImports(
	di *dialect.Dialect,
	imports []string,
	stamps dialect.Params,
	ctx dialect.Params,
) error {
	const errCtx = "resolving imports"

	for _, im := range imports {
		name, filename, found := strings.Cut(im, "=")
		if !found {
			return fmt.Errorf(
				"%s: import must be NAME=filename, got %s",
				errCtx, im,
			)
		}

		content, err := os.ReadFile(filename) //nolint:gosec // paths from CLI flags
		if err != nil {
			return fmt.Errorf(
				"%s: reading %s: %w",
				errCtx, filename, err,
			)
		}

		// First pass: render against context with the
		// engine dialect.
		val, err := di.Render(string(content), ctx)
		if err != nil {
			return fmt.Errorf(
				"%s: rendering %s: %w",
				errCtx, filename, err,
			)
		}

		// Second pass: render against stamps with the
		// brace dialect.
		val, err = dialect.Brace.Render(val, stamps)
		if err != nil {
			return fmt.Errorf(
				"%s: rendering %s: %w",
				errCtx, filename, err,
			)
		}

		ctx["imports."+name] = val
	}

	return nil
}

// expandStamps substitutes {KEY} tags in variable values
// with stamp values. Unknown tags, defaults and empty tags
// are left untouched.
func expandStamps(text string, stamps dialect.Params) string {
	values := make(map[string]interface{}, len(stamps))
	for key, val := range stamps {
		values[key] = val
	}

	return fasttemplate.ExecuteStringStd(
		text, "{", "}", values,
	)
}

// readTemplate reads the template from a file path. If
// tplPath is empty it reads from stdin.
func (en *Engine) readTemplate(
	tplPath string,
) ([]byte, error) {
	const errCtx = "reading template"

	if tplPath != "" {
		content, err := os.ReadFile(tplPath) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		return content, nil
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf(
			"%s: reading stdin: %w", errCtx, err,
		)
	}

	return content, nil
}

// openOutput returns a writer for the result. When
// outPath is empty it returns stdout. The returned
// closer function must be called to finalize the file
// and reports the close error (may be nil for stdout).
func (en *Engine) openOutput(
	outPath string,
	executable bool,
) (io.Writer, func() error, error) {
	const errCtx = "opening output"

	if outPath == "" {
		return os.Stdout, nil, nil
	}

	var perm os.FileMode = 0o666
	if executable {
		perm = 0o777
	}

	fi, err := os.OpenFile( //nolint:gosec // paths from CLI flags
		outPath,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC,
		perm,
	)
	if err != nil {
		return nil, nil, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	return fi, func() error {
		if err := fi.Close(); err != nil {
			return fmt.Errorf("%s: closing: %w", errCtx, err)
		}

		return nil
	}, nil
}
