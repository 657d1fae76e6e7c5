package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/primitives/internal/demo"
	perrors "github.com/vango-dev/primitives/internal/errors"
)

// execute runs the CLI with args and returns what it wrote.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
		not  []string
	}{
		{
			name: "dialog",
			args: []string{"render", "dialog"},
			want: []string{"<!DOCTYPE html>", `<html lang="en" dir="ltr">`, `role="dialog"`, "<title>Dialog</title>"},
			not:  []string{"data-on-click"},
		},
		{
			name: "rtl",
			args: []string{"render", "dialog", "--dir", "rtl"},
			want: []string{`<html lang="en" dir="rtl">`},
		},
		{
			name: "markers",
			args: []string{"render", "dialog", "--markers"},
			want: []string{`data-on-click="true"`},
		},
		{
			name: "fragment",
			args: []string{"render", "portal", "--fragment"},
			want: []string{`<div data-portalled="">Portalled</div>`},
			not:  []string{"<!DOCTYPE html>"},
		},
		{
			name: "escape closes",
			args: []string{"render", "dialog-escape", "--fragment"},
			want: []string{`aria-expanded="false"`},
			not:  []string{`role="dialog"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute(%v) error: %v", tt.args, err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, not := range tt.not {
				if strings.Contains(out, not) {
					t.Errorf("output should not contain %q:\n%s", not, out)
				}
			}
		})
	}
}

func TestRenderList(t *testing.T) {
	out, err := execute(t, "render", "--list")
	if err != nil {
		t.Fatalf("render --list error: %v", err)
	}
	for _, name := range demo.Names() {
		if !strings.Contains(out, name) {
			t.Errorf("--list output missing %q:\n%s", name, out)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
	}{
		{"unknown demo", []string{"render", "carousel"}, "E301"},
		{"bad direction", []string{"render", "dialog", "--dir", "up"}, "E204"},
		{"missing config", []string{"render", "dialog", "--config", "nope.json"}, "E303"},
		{"bad port", []string{"serve", "--port", "70000"}, "E302"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if got := perrors.Code(err); got != tt.wantCode {
				t.Errorf("Code(%v) = %q, want %q", err, got, tt.wantCode)
			}
		})
	}

	if _, err := execute(t, "render"); err == nil {
		t.Error("render without a demo should fail")
	}
}

func TestRenderConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "primitives.json")
	data := `{"render": {"dir": "rtl", "pretty": true, "styleSheets": ["/ui.css"]}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "render", "button", "--config", path)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	for _, want := range []string{`dir="rtl"`, `<link rel="stylesheet" href="/ui.css">`, "\n  <div"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Flags override the file.
	out, err = execute(t, "render", "button", "--config", path, "--dir", "ltr")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(out, `<html lang="en" dir="ltr">`) {
		t.Errorf("--dir did not override the config:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version error: %v", err)
	}
	if out != "dev\n" {
		t.Errorf("version --short = %q, want %q", out, "dev\n")
	}

	out, _ = execute(t, "version")
	if !strings.Contains(out, "Version:    dev") {
		t.Errorf("version output missing version line:\n%s", out)
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("boom"))
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("printError() = %q, want boom", buf.String())
	}

	buf.Reset()
	_, err := demo.Lookup("carousel")
	printError(&buf, err)
	if !strings.Contains(buf.String(), "E301") {
		t.Errorf("printError() = %q, want the E301 code", buf.String())
	}
}
