package dialect

import "strings"

// Placeholder is one parsed occurrence of a placeholder.
type Placeholder struct {
	// Name is the trimmed, non-empty slot name.
	Name string

	// Default is the text after the first "=", if any.
	Default string

	// HasDefault reports whether the placeholder declared
	// a default, even an empty one.
	HasDefault bool
}

// slot records where a placeholder sits in the segment
// list and what it falls back to.
type slot struct {
	position int
	fallback string
}

// Template is a compiled template. Its segments alternate
// between fixed text and placeholder tokens and never
// change after Compile, so a Template may be executed
// concurrently.
type Template struct {
	source       string
	segments     []string
	placeholders []Placeholder
	slots        map[string][]slot
}

// Execute renders the template against params. Each
// placeholder becomes, in order of preference, its
// non-empty parameter value, its non-empty default, or
// its original token text.
func (tp *Template) Execute(params Params) string {
	if len(tp.slots) == 0 {
		return tp.source
	}

	parts := make([]string, len(tp.segments))
	copy(parts, tp.segments)

	for name, slots := range tp.slots {
		value := params[name]

		for _, sl := range slots {
			switch {
			case value != "":
				parts[sl.position] = value
			case sl.fallback != "":
				parts[sl.position] = sl.fallback
			}
		}
	}

	return strings.Join(parts, "")
}

// Source returns the text the template was compiled from.
func (tp *Template) Source() string {
	return tp.source
}

// Placeholders returns the placeholders in order of
// appearance.
func (tp *Template) Placeholders() []Placeholder {
	out := make([]Placeholder, len(tp.placeholders))
	copy(out, tp.placeholders)

	return out
}

// Names returns the distinct placeholder names in order of
// first appearance.
func (tp *Template) Names() []string {
	seen := make(map[string]struct{}, len(tp.slots))

	var names []string

	for _, ph := range tp.placeholders {
		if _, ok := seen[ph.Name]; ok {
			continue
		}

		seen[ph.Name] = struct{}{}
		names = append(names, ph.Name)
	}

	return names
}
