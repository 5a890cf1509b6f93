// Package dialect substitutes delimited placeholders in text. A Dialect is
// a (prefix, suffix) delimiter pair; it compiles template strings into
// reusable Templates that render against a Params map.
//
// A placeholder is the shortest span that starts with the prefix and ends
// with the suffix on a single line. Its body is trimmed and split on the
// first "=" into a name and an optional default value:
//
//	d := dialect.New("${", "}")
//	out, err := d.Render("Hello, ${name=world}!", dialect.Params{"name": "Ada"})
//	// out: "Hello, Ada!"
//
// A supplied non-empty parameter wins over the default; a non-empty default
// wins over the raw token; otherwise the token is left untouched, delimiters
// included. Compiling a placeholder with an empty name fails with a
// *MalformedPlaceholderError.
//
// Dialects and compiled Templates are immutable and safe for concurrent use.
package dialect
