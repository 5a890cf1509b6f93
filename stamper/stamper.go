package stamper

import (
	"fmt"
	"os"
	"strings"

	"github.com/byte4ever/template_dialect/dialect"
)

// LoadStamps reads workspace status files and merges them
// into a single parameter set. Each line is "KEY VALUE"
// with the first space as delimiter. Lines without a space
// are silently skipped and later files override earlier
// ones.
func LoadStamps(
	infoFiles []string,
) (dialect.Params, error) {
	const errCtx = "loading stamps"

	stamps := make(dialect.Params)

	for _, sf := range infoFiles {
		content, err := os.ReadFile(sf) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		for _, line := range strings.Split(
			strings.ReplaceAll(string(content), "\r\n", "\n"), "\n",
		) {
			key, val, found := strings.Cut(line, " ")
			if found {
				stamps[key] = val
			}
		}
	}

	return stamps, nil
}

// Stamp loads workspace status variables from infoFiles
// and substitutes {VAR} placeholders in format. Unknown
// variables without a default are preserved as-is.
func Stamp(
	infoFiles []string,
	format string,
) (string, error) {
	const errCtx = "stamping"

	stamps, err := LoadStamps(infoFiles)
	if err != nil {
		return "", fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	result, err := dialect.Brace.Render(format, stamps)
	if err != nil {
		return "", fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	return result, nil
}
