// Package osfilesystem provides a ports.FileSystem backed by the host OS.
package osfilesystem

import (
	"os"

	"github.com/user/idemfs/pkg/ports"
)

const (
	dirMode  os.FileMode = 0o755
	fileMode os.FileMode = 0o644
)

// FileSystem implements ports.FileSystem using the os package.
type FileSystem struct{}

// New creates a new FileSystem.
func New() *FileSystem {
	return &FileSystem{}
}

// Mkdir creates a single directory.
func (fs *FileSystem) Mkdir(path string) error {
	return os.Mkdir(path, dirMode)
}

// MkdirAll creates a directory and all parent directories.
func (fs *FileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, dirMode)
}

// CreateNew creates an empty file with O_EXCL semantics.
func (fs *FileSystem) CreateNew(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		return err
	}
	return f.Close()
}

// RemoveAll removes path and any children it contains. Unlike
// os.RemoveAll, a missing path is reported as a not-exist error.
func (fs *FileSystem) RemoveAll(path string) error {
	if _, err := os.Lstat(path); err != nil {
		return err
	}
	return os.RemoveAll(path)
}

// Lstat returns file info without following symbolic links.
func (fs *FileSystem) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// Stat returns file info, following symbolic links.
func (fs *FileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Readlink returns the destination of the named symbolic link.
func (fs *FileSystem) Readlink(path string) (string, error) {
	return os.Readlink(path)
}

// Exists checks if a file or directory exists.
func (fs *FileSystem) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
