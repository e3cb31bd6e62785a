package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"fireReport/pkg/e"
)

var keyRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// KV stores each key as <dir>/<key>.json. Writes go through a temp file and
// a rename so a crash never leaves a torn blob behind.
type KV struct {
	dir string
}

func New(dir string) (*KV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, e.Wrap("file.New", err)
	}
	return &KV{dir: dir}, nil
}

func (f *KV) path(key string) (string, error) {
	if !keyRe.MatchString(key) {
		return "", fmt.Errorf("file.KV key %q: %w", key, e.ErrInvalidInput)
	}
	return filepath.Join(f.dir, key+".json"), nil
}

func (f *KV) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "file.KV.Get"

	if err := ctx.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	p, err := f.path(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		return nil, e.Wrap(op, err)
	}
	return b, nil
}

func (f *KV) Set(ctx context.Context, key string, value []byte) error {
	const op = "file.KV.Set"

	if err := ctx.Err(); err != nil {
		return e.WrapError(ctx, op, err)
	}
	p, err := f.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return e.Wrap(op, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return e.Wrap(op, err)
	}
	if err := tmp.Close(); err != nil {
		return e.Wrap(op, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}
