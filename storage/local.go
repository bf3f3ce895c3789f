package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes files under a base directory and serves them through
// the static /uploads route.
type LocalStore struct {
	baseDir string
	baseURL string
}

func NewLocalStore(baseDir, baseURL string) (*LocalStore, error) {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if baseURL == "" {
		baseURL = "/uploads"
	}
	if err := os.MkdirAll(baseDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &LocalStore{
		baseDir: baseDir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *LocalStore) Save(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	cleaned, err := s.cleanKey(key)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.baseDir, cleaned)
	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return "", fmt.Errorf("create directory for %q: %w", key, err)
	}

	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create file %q: %w", key, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("write file %q: %w", key, err)
	}

	return s.baseURL + "/" + filepath.ToSlash(cleaned), nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	cleaned, err := s.cleanKey(key)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.baseDir, cleaned)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file %q: %w", key, err)
	}
	return nil
}

// BaseDir exposes the upload root so the router can mount it as a static
// file group.
func (s *LocalStore) BaseDir() string {
	return s.baseDir
}

// cleanKey rejects keys that would escape the base directory.
func (s *LocalStore) cleanKey(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return cleaned, nil
}
