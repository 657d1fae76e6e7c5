package host

import (
	"io"
	"log/slog"
	"testing"

	"github.com/vango-dev/primitives/pkg/dom"
)

func TestBuildConfigDefaults(t *testing.T) {
	cfg := buildConfig(nil)

	if cfg.Logger == nil {
		t.Error("Logger should default to slog.Default()")
	}
	if cfg.TracerName != defaultTracerName {
		t.Errorf("TracerName = %q, want %q", cfg.TracerName, defaultTracerName)
	}
	if cfg.MaxSettleTicks != defaultMaxSettleTicks {
		t.Errorf("MaxSettleTicks = %d, want %d", cfg.MaxSettleTicks, defaultMaxSettleTicks)
	}
}

func TestBuildConfigOptions(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	doc := dom.NewDocument()

	cfg := buildConfig([]Option{
		WithLogger(logger),
		WithDocument(doc),
		WithDebug(true),
		WithTracerName("custom"),
		WithMaxSettleTicks(4),
	})

	if cfg.Logger != logger || cfg.Document != doc || !cfg.Debug {
		t.Errorf("options not applied: %+v", cfg)
	}
	if cfg.TracerName != "custom" || cfg.MaxSettleTicks != 4 {
		t.Errorf("TracerName = %q, MaxSettleTicks = %d", cfg.TracerName, cfg.MaxSettleTicks)
	}
}

func TestBuildConfigRepairsInvalidValues(t *testing.T) {
	cfg := buildConfig([]Option{WithLogger(nil), WithTracerName(""), WithMaxSettleTicks(-1)})

	if cfg.Logger == nil || cfg.TracerName == "" || cfg.MaxSettleTicks != defaultMaxSettleTicks {
		t.Errorf("invalid values not repaired: %+v", cfg)
	}
}
