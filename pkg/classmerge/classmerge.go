// Package classmerge folds ordered class-name fragments into a single
// deduplicated class string, resolving utility-class conflicts so that the
// later fragment of the same category wins.
//
//	classmerge.Merge("px-2 py-1 bg-red-500", "p-3 bg-blue-500")
//	// "p-3 bg-blue-500"
//
// Fragments may be strings, []string, map[string]bool (keys included when
// true, in sorted order), []any of those, or nil/bool values (ignored), so
// conditional fragments can be passed inline:
//
//	classmerge.Merge("btn", classmerge.If(active, "btn-active"), map[string]bool{"disabled": off})
//
// Conflicts are resolved by tailwind-merge: classes of the same utility
// group, variant and important marker collapse to the last one, and a
// shorthand removes earlier longhands (p-3 removes an earlier px-2, but
// px-2 keeps an earlier p-3). Unknown classes are only deduplicated.
package classmerge

import (
	"fmt"
	"sort"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Merge returns the merged class string for fragments. The same input
// sequence always yields the same output.
func Merge(fragments ...any) string {
	tokens := lastUnique(collect(nil, fragments))
	if len(tokens) == 0 {
		return ""
	}
	return twmerge.Merge(strings.Join(tokens, " "))
}

// lastUnique drops exact duplicates, keeping the last occurrence.
func lastUnique(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	kept := make([]string, 0, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		if !seen[tokens[i]] {
			seen[tokens[i]] = true
			kept = append(kept, tokens[i])
		}
	}
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept
}

// Join concatenates fragments without conflict resolution, dropping empty
// values and exact duplicates (first occurrence wins).
func Join(fragments ...any) string {
	tokens := collect(nil, fragments)
	seen := make(map[string]bool, len(tokens))
	out := tokens[:0]
	for _, tok := range tokens {
		if !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	return strings.Join(out, " ")
}

// If returns class when cond is true and "" otherwise.
func If(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// collect flattens fragments into whitespace-separated class tokens.
func collect(dst []string, fragments []any) []string {
	for _, f := range fragments {
		switch v := f.(type) {
		case nil, bool:
			continue
		case string:
			dst = append(dst, strings.Fields(v)...)
		case []string:
			for _, s := range v {
				dst = append(dst, strings.Fields(s)...)
			}
		case map[string]bool:
			keys := make([]string, 0, len(v))
			for k, on := range v {
				if on {
					keys = append(keys, k)
				}
			}
			sort.Strings(keys)
			for _, k := range keys {
				dst = append(dst, strings.Fields(k)...)
			}
		case []any:
			dst = collect(dst, v)
		case fmt.Stringer:
			dst = append(dst, strings.Fields(v.String())...)
		}
	}
	return dst
}
