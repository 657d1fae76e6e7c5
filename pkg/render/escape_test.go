package render

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"empty", "", ""},
		{"plain", "Hello, World!", "Hello, World!"},
		{"ampersand", "Tom & Jerry", "Tom &amp; Jerry"},
		{"quotes", `say "it's"`, "say &quot;it&#39;s&quot;"},
		{"script", "<script>alert('xss')</script>", "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;"},
		{"already escaped", "&amp;", "&amp;amp;"},
		{"unicode", "مرحبا 世界", "مرحبا 世界"},
		{"newline kept", "a\nb", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeHTML(tt.input); got != tt.want {
				t.Errorf("escapeHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name, input, want string
	}{
		{"plain", "btn primary", "btn primary"},
		{"quote", `a"b`, "a&quot;b"},
		{"newline", "a\nb", "a&#10;b"},
		{"carriage return", "a\rb", "a&#13;b"},
		{"tab", "a\tb", "a&#9;b"},
		{"style", "color: red; content: '>'", "color: red; content: &#39;&gt;&#39;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeAttr(tt.input); got != tt.want {
				t.Errorf("escapeAttr(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
