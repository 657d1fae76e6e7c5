package errors

import "sort"

// Template defines a registered error type.
type Template struct {
	Category   Category
	Message    string
	Suggestion string
	DocURL     string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// ============================================
	// Composition Errors (E200-E219)
	// ============================================

	"E201": {
		Category:   CategoryComposition,
		Message:    "asChild expects exactly one element child",
		Suggestion: "Pass a single element or component as the only child, or drop AsChild.",
		DocURL:     "https://vango.dev/docs/primitives/errors/E201",
	},
	"E202": {
		Category:   CategoryHost,
		Message:    "No host document available",
		Suggestion: "Mount the tree with host.WithDocument, or call dom.SetGlobal before rendering.",
		DocURL:     "https://vango.dev/docs/primitives/errors/E202",
	},
	"E203": {
		Category:   CategoryRuntime,
		Message:    "Component panicked",
		Suggestion: "Check the component's render function and its mount effects.",
		DocURL:     "https://vango.dev/docs/primitives/errors/E203",
	},
	"E204": {
		Category:   CategoryValidation,
		Message:    "Unknown text direction",
		Suggestion: `Use "ltr" or "rtl".`,
		DocURL:     "https://vango.dev/docs/primitives/errors/E204",
	},
	"E205": {
		Category:   CategoryRuntime,
		Message:    "Tree did not settle",
		Suggestion: "A mount effect keeps changing state on every tick. Make the update conditional.",
		DocURL:     "https://vango.dev/docs/primitives/errors/E205",
	},

	// ============================================
	// CLI Errors (E300-E319)
	// ============================================

	"E301": {
		Category:   CategoryCLI,
		Message:    "Unknown demo",
		Suggestion: "Run 'primitives render --list' to see the available demos.",
		DocURL:     "https://vango.dev/docs/primitives/errors/E301",
	},
	"E302": {
		Category:   CategoryConfig,
		Message:    "Invalid flag value",
		DocURL:     "https://vango.dev/docs/primitives/errors/E302",
	},
	"E303": {
		Category:   CategoryConfig,
		Message:    "Config file not found",
		Suggestion: "Create primitives.json or pass --config with the path to one.",
		DocURL:     "https://vango.dev/docs/primitives/errors/E303",
	},
	"E304": {
		Category:   CategoryConfig,
		Message:    "Invalid config file",
		Suggestion: "Check that primitives.json is valid JSON.",
		DocURL:     "https://vango.dev/docs/primitives/errors/E304",
	},
	"E305": {
		Category:   CategoryConfig,
		Message:    "Missing AWS credentials",
		Suggestion: "Set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY, or publish to a directory with --out.",
		DocURL:     "https://vango.dev/docs/primitives/errors/E305",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}

// Codes returns every registered code in ascending order.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
