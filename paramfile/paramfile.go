package paramfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/byte4ever/template_dialect/dialect"
)

// Format identifies a parameter file syntax.
type Format string

// Supported formats.
const (
	JSON   Format = "json"
	YAML   Format = "yaml"
	TOML   Format = "toml"
	Dotenv Format = "env"
)

var (
	// ErrUnknownFormat is returned for files whose
	// extension maps to no supported format.
	ErrUnknownFormat = errors.New("unknown parameter file format")

	// ErrNotScalar is returned when a parameter value is a
	// mapping or a list.
	ErrNotScalar = errors.New("parameter value is not a scalar")
)

// FormatFor picks the format of path from its extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".env":
		return Dotenv, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads the parameter file at path.
func Load(path string) (dialect.Params, error) {
	const errCtx = "loading params"

	format, err := FormatFor(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	content, err := os.ReadFile(path) //nolint:gosec // paths from CLI flags
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	params, err := Decode(format, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", errCtx, path, err)
	}

	return params, nil
}

// LoadAll reads every file in paths and merges them, later
// files overriding earlier ones.
func LoadAll(paths []string) (dialect.Params, error) {
	sets := make([]dialect.Params, 0, len(paths))

	for _, pa := range paths {
		params, err := Load(pa)
		if err != nil {
			return nil, err
		}

		sets = append(sets, params)
	}

	return Merge(sets...), nil
}

// Decode parses data in the given format.
func Decode(format Format, data []byte) (dialect.Params, error) {
	const errCtx = "decoding params"

	var (
		raw map[string]interface{}
		err error
	)

	switch format {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&raw)
	case YAML:
		err = yaml.Unmarshal(data, &raw)
	case TOML:
		err = toml.Unmarshal(data, &raw)
	case Dotenv:
		var env map[string]string

		env, err = godotenv.UnmarshalBytes(data)
		if err == nil {
			return dialect.Params(env), nil
		}
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	params, err := flatten(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return params, nil
}

// Merge combines parameter sets. Later sets override
// earlier ones; the inputs are not modified.
func Merge(sets ...dialect.Params) dialect.Params {
	out := make(dialect.Params)

	for _, set := range sets {
		for key, val := range set {
			out[key] = val
		}
	}

	return out
}

// flatten converts decoded scalars to strings.
func flatten(
	raw map[string]interface{},
) (dialect.Params, error) {
	params := make(dialect.Params, len(raw))

	for key, val := range raw {
		switch typedVal := val.(type) {
		case nil:
			continue
		case string:
			params[key] = typedVal
		case time.Time:
			params[key] = typedVal.Format(time.RFC3339Nano)
		case map[string]interface{},
			map[interface{}]interface{},
			[]interface{}:
			return nil, fmt.Errorf("%w: %s", ErrNotScalar, key)
		default:
			params[key] = fmt.Sprint(typedVal)
		}
	}

	return params, nil
}
