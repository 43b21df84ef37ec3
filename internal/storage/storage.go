// Package storage is where `do export` writes the static snapshot: a local
// directory by default, or an S3-compatible bucket when one is configured.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	cfg "github.com/templui/folio/internal/config"
)

const uploadTimeout = 30 * time.Second

type Storage interface {
	// Save writes body at path, replacing what was there.
	Save(ctx context.Context, path, contentType string, body io.Reader) error
	// URL is where the saved file can be fetched from.
	URL(path string) string
}

// New picks S3 when a bucket is configured and the export directory
// otherwise.
func New(ctx context.Context, c *cfg.Config) (Storage, error) {
	if c.HasS3() {
		slog.Info("exporting to S3", "bucket", c.S3Bucket, "region", c.S3Region, "endpoint", c.S3Endpoint)
		return NewS3Storage(ctx, S3Config{
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Endpoint:  c.S3Endpoint,
		})
	}
	slog.Info("exporting to directory", "dir", c.ExportDir)
	return NewLocalStorage(c.ExportDir), nil
}

type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

func (s *LocalStorage) Save(_ context.Context, path, _ string, body io.Reader) error {
	full := filepath.Join(s.dir, filepath.FromSlash(path))
	err := os.MkdirAll(filepath.Dir(full), 0o755)
	if err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	_, err = io.Copy(f, body)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func (s *LocalStorage) URL(path string) string {
	return filepath.Join(s.dir, filepath.FromSlash(path))
}
