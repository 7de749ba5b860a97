// Package storage provides the local-disk implementation of service.FileStorage.
package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"walletmart/config"
	"walletmart/internal/domain/service"
)

const (
	defaultUploadsDir = "uploads"
	defaultBaseURL    = "/uploads"
)

// localStorage writes uploaded files under a configured directory and serves
// them via a static URL prefix.
type localStorage struct {
	dir     string
	baseURL string
}

// New is the constructor for localStorage.
func New(cfg *config.Config) service.FileStorage {
	dir := defaultUploadsDir
	baseURL := defaultBaseURL
	if cfg.Uploads != nil {
		if cfg.Uploads.Dir != "" {
			dir = cfg.Uploads.Dir
		}
		if cfg.Uploads.BaseURL != "" {
			baseURL = cfg.Uploads.BaseURL
		}
	}

	return &localStorage{dir: dir, baseURL: baseURL}
}

// Save writes the content to disk and returns its public URL path.
func (s *localStorage) Save(_ context.Context, directory, filename string, content io.Reader) (string, error) {
	// Strip any path components a client might smuggle into the name.
	filename = filepath.Base(filename)
	directory = filepath.Base(directory)

	targetDir := filepath.Join(s.dir, directory)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create upload directory")
	}

	target := filepath.Join(targetDir, filename)
	f, err := os.Create(target)
	if err != nil {
		return "", errors.Wrap(err, "failed to create upload file")
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", errors.Wrap(err, "failed to write upload file")
	}

	return path.Join(s.baseURL, directory, filename), nil
}

// Delete removes a previously stored file by its public URL path. Unknown
// URLs are ignored.
func (s *localStorage) Delete(_ context.Context, url string) error {
	rel, ok := strings.CutPrefix(url, s.baseURL)
	if !ok {
		return nil
	}

	target := filepath.Join(s.dir, filepath.FromSlash(strings.TrimPrefix(rel, "/")))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to delete upload file")
	}

	return nil
}
