package dialect

import (
	"fmt"
	"regexp"
	"strings"
)

// lineBreaks lists the characters a placeholder body
// never spans.
const lineBreaks = `\n\r\x{2028}\x{2029}`

// Params maps placeholder names to values. A missing key,
// an empty value and a nil map all mean "no value".
type Params map[string]string

// Dialect is a placeholder syntax defined by a prefix and
// a suffix. Create it with New; the zero value is not
// usable.
type Dialect struct {
	prefix  string
	suffix  string
	matcher *regexp.Regexp
}

// New returns a Dialect recognizing placeholders that
// start with prefix and end with suffix. Both are matched
// literally. Empty delimiters are accepted but match
// everywhere, so every non-empty template compiled with
// them is malformed.
func New(prefix, suffix string) *Dialect {
	return &Dialect{
		prefix: prefix,
		suffix: suffix,
		matcher: regexp.MustCompile(
			regexp.QuoteMeta(prefix) +
				"[^" + lineBreaks + "]*?" +
				regexp.QuoteMeta(suffix),
		),
	}
}

// Prefix returns the placeholder start marker.
func (di *Dialect) Prefix() string {
	return di.prefix
}

// Suffix returns the placeholder end marker.
func (di *Dialect) Suffix() string {
	return di.suffix
}

// String returns a sample placeholder for the dialect.
func (di *Dialect) String() string {
	return di.prefix + "name" + di.suffix
}

// Compile parses text into a reusable Template. It fails
// with a *MalformedPlaceholderError when a placeholder has
// no name.
func (di *Dialect) Compile(text string) (*Template, error) {
	// Empty delimiters match the empty string, and empty
	// text holds no placeholder.
	var locs [][]int
	if text != "" {
		locs = di.matcher.FindAllStringIndex(text, -1)
	}

	tpl := &Template{
		source:   text,
		segments: make([]string, 0, 2*len(locs)+1),
	}

	last := 0

	for _, loc := range locs {
		tpl.segments = append(tpl.segments, text[last:loc[0]])

		ph, err := di.parse(text[loc[0]:loc[1]], len(tpl.placeholders))
		if err != nil {
			return nil, err
		}

		if tpl.slots == nil {
			tpl.slots = make(map[string][]slot)
		}

		tpl.slots[ph.Name] = append(tpl.slots[ph.Name], slot{
			position: len(tpl.segments),
			fallback: ph.Default,
		})
		tpl.placeholders = append(tpl.placeholders, ph)
		tpl.segments = append(tpl.segments, text[loc[0]:loc[1]])

		last = loc[1]
	}

	tpl.segments = append(tpl.segments, text[last:])

	return tpl, nil
}

// MustCompile is like Compile but panics on a malformed
// placeholder. It simplifies initialization of templates
// held in package-level variables.
func (di *Dialect) MustCompile(text string) *Template {
	tpl, err := di.Compile(text)
	if err != nil {
		panic(fmt.Sprintf("dialect: Compile(%q): %v", text, err))
	}

	return tpl
}

// Render compiles text and executes it with params in one
// call. Nothing is cached between calls.
func (di *Dialect) Render(
	text string,
	params Params,
) (string, error) {
	tpl, err := di.Compile(text)
	if err != nil {
		return "", err
	}

	return tpl.Execute(params), nil
}

// parse turns a matched token into a Placeholder. ordinal
// is the number of placeholders parsed before this one.
func (di *Dialect) parse(
	token string,
	ordinal int,
) (Placeholder, error) {
	body := strings.TrimSpace(
		token[len(di.prefix) : len(token)-len(di.suffix)],
	)

	name, value, found := strings.Cut(body, "=")

	ph := Placeholder{
		Name:       strings.TrimSpace(name),
		Default:    value,
		HasDefault: found,
	}

	if ph.Name == "" {
		return Placeholder{}, &MalformedPlaceholderError{
			Ordinal: ordinal,
		}
	}

	return ph, nil
}
