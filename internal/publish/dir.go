package publish

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DirSink writes objects below Root, creating directories as needed.
type DirSink struct {
	Root string
}

// Put implements Sink.
func (d *DirSink) Put(ctx context.Context, key, contentType string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(d.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}
