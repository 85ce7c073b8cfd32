package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Filesystem stores uploads on local disk. Files get a uuid-based name
// keeping the original extension and are addressed as /uploads/<name>,
// which the server exposes as a static route over the same directory.
type Filesystem struct {
	root string // directory all uploads are written into
}

// NewFilesystem creates the upload directory if needed and returns a
// disk-backed store rooted there.
func NewFilesystem(root string) (*Filesystem, error) {
	if root == "" {
		root = "./uploads"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Filesystem{root: root}, nil
}

// Root returns the directory uploads are written into, so the server
// can register a static file route over it.
func (f *Filesystem) Root() string { return f.root }

// Save streams the file to disk under a fresh uuid name and returns
// the /uploads URL path it will be served from. The partially written
// file is removed on copy failure.
func (f *Filesystem) Save(_ context.Context, originalName, _ string, r io.Reader) (string, error) {
	name := uuid.New().String() + filepath.Ext(originalName)
	dst, err := os.Create(filepath.Join(f.root, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}
	return "/uploads/" + name, nil
}
