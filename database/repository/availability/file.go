// File: database/repository/availability/file.go
package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	fileSuffix      = ".json"
	tmpSuffix       = ".tmp"
	filePermissions = 0644
)

type fileRepo struct {
	dir string
}

// NewFileRepo stores each record as <dir>/<key>.json.
func NewFileRepo(dir string) (Repository, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &fileRepo{dir: dir}, nil
}

func (r *fileRepo) Name() string { return DriverFile }

func (r *fileRepo) path(key string) string {
	return filepath.Join(r.dir, sanitizeKey(key)+fileSuffix)
}

func (r *fileRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Put writes to a temp file first and renames it over the record, so a
// failed write never leaves a truncated record behind.
func (r *fileRepo) Put(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := r.path(key)
	tmp := target + tmpSuffix
	if err := os.WriteFile(tmp, payload, filePermissions); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

func (r *fileRepo) Ping(ctx context.Context) error {
	info, err := os.Stat(r.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", r.dir)
	}
	return nil
}

// sanitizeKey keeps keys like "tutor_availability:abc" usable as file names.
func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, key)
}
