package dialect

import (
	"sort"
	"strings"
)

// Predefined dialects.
var (
	// JavaScript matches ${name}.
	JavaScript = New("${", "}")

	// Mustache matches {{name}}.
	Mustache = New("{{", "}}")

	// Windows matches %name%.
	Windows = New("%", "%")

	// Brace matches {name}, the workspace status stamp
	// syntax.
	Brace = New("{", "}")
)

var styles = map[string]*Dialect{
	"javascript": JavaScript,
	"mustache":   Mustache,
	"windows":    Windows,
	"brace":      Brace,
}

// Lookup returns the predefined dialect registered under
// name. Names are case-insensitive.
func Lookup(name string) (*Dialect, bool) {
	di, ok := styles[strings.ToLower(name)]

	return di, ok
}

// StyleNames returns the names of the predefined dialects
// in sorted order.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
