package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileStore abstracts the blob storage backing material uploads and rendered
// certificates so services stay testable without touching the filesystem.
type FileStore interface {
	// Save streams src to the path relative to the store root and returns
	// the absolute path written.
	Save(relPath string, src io.Reader) (string, error)
	// Delete removes a previously saved file. Missing files are not an error.
	Delete(relPath string) error
	// Exists reports whether the file is present.
	Exists(relPath string) bool
	// AbsPath resolves a relative path to an absolute path under the root.
	AbsPath(relPath string) string
}

// LocalFileStore keeps files on the local disk under a single root directory.
type LocalFileStore struct {
	root string
}

// NewLocalFileStore creates a file store rooted at dir.
func NewLocalFileStore(dir string) *LocalFileStore {
	return &LocalFileStore{root: dir}
}

func (s *LocalFileStore) Save(relPath string, src io.Reader) (string, error) {
	destPath := filepath.Join(s.root, relPath)
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return destPath, nil
}

func (s *LocalFileStore) Delete(relPath string) error {
	err := os.Remove(filepath.Join(s.root, relPath))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

func (s *LocalFileStore) Exists(relPath string) bool {
	_, err := os.Stat(filepath.Join(s.root, relPath))
	return err == nil
}

func (s *LocalFileStore) AbsPath(relPath string) string {
	return filepath.Join(s.root, relPath)
}
