package slot

import (
	"fmt"
	"sort"
	"strings"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// ParseStyle reads a style value into declarations. It accepts CSS
// declaration strings ("color: red; margin: 0") and map[string]string,
// whose keys are taken in sorted order. Property names are lower-cased.
// Later duplicates in a string overwrite earlier ones in place.
func ParseStyle(style any) []Declaration {
	var decls []Declaration
	add := func(prop, value string) {
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		if prop == "" {
			return
		}
		for i := range decls {
			if decls[i].Property == prop {
				decls[i].Value = value
				return
			}
		}
		decls = append(decls, Declaration{Property: prop, Value: value})
	}

	switch s := style.(type) {
	case nil:
	case string:
		for _, part := range strings.Split(s, ";") {
			prop, value, ok := strings.Cut(part, ":")
			if !ok {
				continue
			}
			add(prop, value)
		}
	case map[string]string:
		keys := make([]string, 0, len(s))
		for k := range s {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			add(k, s[k])
		}
	case fmt.Stringer:
		return ParseStyle(s.String())
	}
	return decls
}

// FormatStyle renders declarations as a CSS declaration string.
func FormatStyle(decls []Declaration) string {
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
	}
	return b.String()
}

// MergeStyle shallow-merges two style values per property. Properties keep
// the position they were first seen in; the override's value wins.
func MergeStyle(base, override any) string {
	merged := ParseStyle(base)
	for _, d := range ParseStyle(override) {
		found := false
		for i := range merged {
			if merged[i].Property == d.Property {
				merged[i].Value = d.Value
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, d)
		}
	}
	return FormatStyle(merged)
}
