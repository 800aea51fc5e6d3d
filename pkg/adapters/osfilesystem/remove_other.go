//go:build !unix

package osfilesystem

import (
	"os"
	"syscall"
)

// RemoveDir removes an empty directory.
func (fs *FileSystem) RemoveDir(path string) error {
	fi, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return &os.PathError{Op: "rmdir", Path: path, Err: syscall.ENOTDIR}
	}
	return os.Remove(path)
}

// RemoveFile removes a file or symbolic link.
func (fs *FileSystem) RemoveFile(path string) error {
	fi, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return &os.PathError{Op: "remove", Path: path, Err: syscall.EISDIR}
	}
	return os.Remove(path)
}
