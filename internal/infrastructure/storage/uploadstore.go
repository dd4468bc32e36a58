// Package storage keeps attachment bytes on the local filesystem.
package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"helpdesk/internal/shared/biztime"
)

// UploadStore writes attachment content under generated names inside a
// single uploads directory. Original file names are never used on disk.
type UploadStore struct {
	dir string
}

func NewUploadStore(dir string) (*UploadStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadStore{dir: dir}, nil
}

// Dir returns the uploads directory, for mounting it statically.
func (s *UploadStore) Dir() string {
	return s.dir
}

// Store writes content under a generated name and returns that name. The
// name keeps the original extension so served files get a sensible
// content type.
func (s *UploadStore) Store(originalName string, content io.Reader) (string, error) {
	fileName, err := generateFileName(originalName)
	if err != nil {
		return "", err
	}

	target := filepath.Join(s.dir, fileName)
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(target)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}

	return fileName, nil
}

// Remove deletes a stored file. A file that is already gone is not an error.
func (s *UploadStore) Remove(fileName string) error {
	path, err := s.safePath(fileName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove upload file: %w", err)
	}
	return nil
}

// Path returns the on-disk location of a stored file.
func (s *UploadStore) Path(fileName string) string {
	path, err := s.safePath(fileName)
	if err != nil {
		return ""
	}
	return path
}

// safePath rejects names that would escape the uploads directory.
func (s *UploadStore) safePath(fileName string) (string, error) {
	if fileName == "" || fileName != filepath.Base(fileName) {
		return "", fmt.Errorf("invalid file name: %q", fileName)
	}
	return filepath.Join(s.dir, fileName), nil
}

func generateFileName(originalName string) (string, error) {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	return fmt.Sprintf("%d-%s%s", biztime.Now().UnixMilli(), hex.EncodeToString(suffix), ext), nil
}
