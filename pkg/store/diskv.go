package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvKV stores each key as one file directly under a base directory.
type DiskvKV struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskvKV opens (creating if needed) a diskv store rooted at basePath.
func NewDiskvKV(basePath string) (*DiskvKV, error) {
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &DiskvKV{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			TempDir:           filepath.Join(basePath, ".tmp"),
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			// No read cache: the file may be rewritten by another process.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
	}, nil
}

// BasePath is the directory holding the value files.
func (k *DiskvKV) BasePath() string {
	return k.basePath
}

func (k *DiskvKV) Read(key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	val, err := k.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return val, nil
}

func (k *DiskvKV) Write(key string, val []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	return k.d.Write(key, val)
}

func (k *DiskvKV) Erase(key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := k.d.Erase(key); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// Watch streams an Event whenever the file backing key changes on disk.
func (k *DiskvKV) Watch(ctx context.Context, key string) (<-chan Event, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	target := filepath.Join(k.basePath, key)
	return watchDir(ctx, k.basePath, key, func(name string) bool {
		return filepath.Clean(name) == target
	})
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
