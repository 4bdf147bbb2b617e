package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Storage persists uploaded portfolio images.
type Storage interface {
	Save(ctx context.Context, file *multipart.FileHeader, subDir string) (relPath string, err error)
	Delete(ctx context.Context, relPath string) error
}

// LocalStorage keeps uploads on the local filesystem under a base
// directory that the server also serves statically.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates the base directory if needed.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// Save writes the uploaded file under subDir with a UUID-prefixed name so
// repeated uploads of the same filename never collide. Returns the path
// relative to the base directory.
func (s *LocalStorage) Save(ctx context.Context, file *multipart.FileHeader, subDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.New().String() + "_" + filepath.Base(file.Filename)
	relPath := filepath.Join(subDir, name)
	fullPath := filepath.Join(s.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("create subdir: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("write file: %w", err)
	}

	return filepath.ToSlash(relPath), nil
}

// Delete removes a stored file. A missing file is not an error.
func (s *LocalStorage) Delete(ctx context.Context, relPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}
