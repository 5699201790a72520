// Package format implements placeholder interpolation for template strings.
//
// Placeholders take the form {name} or {name=default}, with an optional
// leading dollar sign (${name}), and may equivalently appear percent-encoded
// as %7Bname%7D. Arguments are supplied as either a [Positional] sequence
// (placeholder names "0", "1", ...) or a [Named] map; the caller picks the
// arm explicitly rather than the package sniffing the shape at runtime.
package format

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrEmptyTemplate is returned when the template string is empty.
var ErrEmptyTemplate = errors.New("format: empty template")

// Args supplies substitution values for placeholders. The two
// implementations are Positional and Named.
type Args interface {
	// lookup resolves a placeholder name. Names are matched
	// case-insensitively; implementations receive them already lowercased
	// and trimmed.
	lookup(name string) (string, bool)
}

// Positional supplies values by index: "{0}" resolves to the first element.
type Positional []string

func (p Positional) lookup(name string) (string, bool) {
	i, err := strconv.Atoi(name)
	if err != nil || i < 0 || i >= len(p) {
		return "", false
	}
	return p[i], true
}

// Named supplies values by key. Keys are matched case-insensitively.
type Named map[string]string

func (m Named) lookup(name string) (string, bool) {
	for k, v := range m {
		if strings.ToLower(k) == name {
			return v, true
		}
	}
	return "", false
}

// Placeholder patterns: the literal-brace form and the percent-encoded form.
// Both accept an optional leading "$" and an optional "=default" clause.
var (
	bracePattern   = regexp.MustCompile(`\$?\{([^{}=]+)(?:=([^{}]*))?\}`)
	encodedPattern = regexp.MustCompile(`(?i)\$?%7B([^%=]+?)(?:=([^%]*?))?%7D`)
)

// Format substitutes the template's placeholders from args.
//
// A placeholder whose name resolves in args is replaced by the value,
// trimmed of surrounding whitespace and single/double quotes. An unresolved
// placeholder is replaced by its default clause (same trim rule) when one is
// present, otherwise by the empty string. A resolved value that trims to
// nothing renders as the empty string; the default applies only to absent
// names.
//
// An empty template returns ErrEmptyTemplate. Nil args return an empty
// result with no substitution attempted and no error.
func Format(template string, args Args) (string, error) {
	if template == "" {
		return "", ErrEmptyTemplate
	}
	if args == nil {
		return "", nil
	}

	out := substitute(template, bracePattern, args)
	out = substitute(out, encodedPattern, args)
	return out, nil
}

// substitute replaces every placeholder matched by pattern in a single pass.
func substitute(s string, pattern *regexp.Regexp, args Args) string {
	return pattern.ReplaceAllStringFunc(s, func(match string) string {
		groups := pattern.FindStringSubmatch(match)
		name := strings.ToLower(strings.TrimSpace(groups[1]))
		if v, ok := args.lookup(name); ok {
			return clean(v)
		}
		return clean(groups[2])
	})
}

// clean trims surrounding whitespace and quote characters from a value.
func clean(v string) string {
	return strings.Trim(strings.TrimSpace(v), `"'`)
}
