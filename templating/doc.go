// Package templating expands template files through a placeholder dialect.
// Values come from stamp info files, parameter files (JSON, YAML, TOML,
// dotenv) and explicit key-value pairs; the delimiters default to "{{" and
// "}}" and can be changed with explicit tags or a predefined style.
//
// The Engine type holds configuration (tags, style, stamp info and parameter
// files) and expands templates via the Expand method, which reads a template
// file, applies variable substitution and import expansion, and writes the
// result.
package templating
