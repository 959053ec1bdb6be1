// Package blob provides local file storage for uploaded media. It stands
// in for an object store behind the same interface the admin flow uses.
package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// urlPrefix is the public path media files are served under.
const urlPrefix = "/media/"

// FSStore writes blobs under a root directory and serves them by URL
// path. Names may contain forward slashes; anything escaping the root is
// rejected.
type FSStore struct {
	root string
}

func NewFSStore(root string) (*FSStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root: %w", err)
	}
	return &FSStore{root: root}, nil
}

func (s *FSStore) Upload(_ context.Context, name string, r io.Reader) (string, error) {
	path, err := s.resolve(name)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create blob dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close blob: %w", err)
	}
	return urlPrefix + name, nil
}

func (s *FSStore) Delete(_ context.Context, url string) error {
	name := strings.TrimPrefix(url, urlPrefix)
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete blob: %w", err)
	}
	return nil
}

// Root returns the directory blobs live in, for static file serving.
func (s *FSStore) Root() string {
	return s.root
}

func (s *FSStore) resolve(name string) (string, error) {
	path := filepath.Join(s.root, filepath.FromSlash(name))
	if !strings.HasPrefix(path, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return "", fmt.Errorf("invalid blob name %q", name)
	}
	return path, nil
}
