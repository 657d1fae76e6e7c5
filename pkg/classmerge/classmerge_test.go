package classmerge

import (
	"strings"
	"testing"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		in   []any
		want string
	}{
		{"later padding wins", []any{"p-4", "p-2"}, "p-2"},
		{"shorthand overrides axis", []any{"px-2 py-1", "p-3"}, "p-3"},
		{"axis keeps earlier shorthand", []any{"p-3", "px-2"}, "p-3 px-2"},
		{"axis overrides side", []any{"pl-1 pr-2", "px-4"}, "px-4"},
		{"negative margins conflict", []any{"-mt-2", "mt-4"}, "mt-4"},
		{"variants scope conflicts", []any{"hover:bg-red-500", "bg-blue-500"}, "hover:bg-red-500 bg-blue-500"},
		{"same variant conflicts", []any{"hover:bg-red-500", "hover:bg-blue-500"}, "hover:bg-blue-500"},
		{"important scopes conflicts", []any{"!p-2", "p-4"}, "!p-2 p-4"},
		{"font size vs color", []any{"text-sm text-red-500", "text-lg"}, "text-red-500 text-lg"},
		{"text color replaced", []any{"text-red-500", "text-primary-foreground"}, "text-primary-foreground"},
		{"text align", []any{"text-left", "text-center text-sm"}, "text-center text-sm"},
		{"display", []any{"flex", "hidden"}, "hidden"},
		{"position", []any{"absolute inset-0", "relative"}, "inset-0 relative"},
		{"border width vs color", []any{"border border-input", "border-2 border-red-500"}, "border-2 border-red-500"},
		{"border side", []any{"border-t-2", "border-0"}, "border-0"},
		{"rounded", []any{"rounded-md rounded-t-lg", "rounded-full"}, "rounded-full"},
		{"rounded side keeps base", []any{"rounded-md", "rounded-t-none"}, "rounded-md rounded-t-none"},
		{"arbitrary values", []any{"w-[10px]", "w-full"}, "w-full"},
		{"arbitrary variants", []any{"data-[state=open]:opacity-0", "data-[state=open]:opacity-100"}, "data-[state=open]:opacity-100"},
		{"unknown classes are deduplicated", []any{"foo bar", "foo"}, "bar foo"},
		{"duplicate utility keeps last", []any{"p-2 m-1", "p-2"}, "m-1 p-2"},
		{"empty and falsy fragments", []any{"", nil, false, "  a  "}, "a"},
		{"string slice", []any{[]string{"p-1", "m-1"}, "p-2"}, "m-1 p-2"},
		{"conditional map", []any{"btn", map[string]bool{"active": true, "disabled": false}}, "btn active"},
		{"nested collections", []any{[]any{"p-1", []any{"p-3"}}, If(false, "p-9")}, "p-3"},
		{"shadow and ring", []any{"shadow-sm ring-2 ring-ring", "shadow-lg ring-offset-2"}, "ring-2 ring-ring shadow-lg ring-offset-2"},
		{"flex direction vs flex", []any{"flex-row flex-1", "flex-col"}, "flex-1 flex-col"},
		{"opacity postfix color", []any{"bg-black/80", "bg-white"}, "bg-white"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Merge(tt.in...); got != tt.want {
				t.Errorf("Merge(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMergeDeterministic(t *testing.T) {
	in := []any{"p-2 text-sm", map[string]bool{"b": true, "a": true, "c": true}, "p-4"}
	first := Merge(in...)
	for i := 0; i < 20; i++ {
		if got := Merge(in...); got != first {
			t.Fatalf("Merge not deterministic: %q vs %q", got, first)
		}
	}
	if first != "text-sm a b c p-4" {
		t.Errorf("Merge = %q", first)
	}
}

func TestJoin(t *testing.T) {
	if got := Join("p-4", "p-2 p-4", nil); got != "p-4 p-2" {
		t.Errorf("Join = %q, want %q", got, "p-4 p-2")
	}
}

func TestLastUnique(t *testing.T) {
	got := strings.Join(lastUnique([]string{"a", "b", "a", "c", "b"}), " ")
	if got != "a c b" {
		t.Errorf("lastUnique = %q, want %q", got, "a c b")
	}
}
