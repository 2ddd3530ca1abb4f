// Package snapshot provides the persistence adapters behind the cart and
// wishlist stores: one file per key on disk, or an in-memory map for tests
// and ephemeral sessions.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Dir stores each snapshot as a file named after its key under a root
// directory. Writes go through a temp file and rename so a crashed write
// never leaves a truncated snapshot behind.
type Dir struct {
	root string
}

func NewDir(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	return &Dir{root: root}, nil
}

func (d *Dir) Read(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(d.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("os.ReadFile: %w", err)
	}

	return data, true, nil
}

func (d *Dir) Write(key string, data []byte) error {
	tmp, err := os.CreateTemp(d.root, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("tmp.Write: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("tmp.Close: %w", err)
	}

	if err := os.Rename(tmp.Name(), d.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("os.Rename: %w", err)
	}

	return nil
}

func (d *Dir) path(key string) string {
	return filepath.Join(d.root, key+".json")
}
