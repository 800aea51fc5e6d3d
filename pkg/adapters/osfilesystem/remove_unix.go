//go:build unix

package osfilesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

// RemoveDir removes an empty directory with rmdir(2).
func (fs *FileSystem) RemoveDir(path string) error {
	if err := ignoringEINTR(func() error { return unix.Rmdir(path) }); err != nil {
		return &os.PathError{Op: "rmdir", Path: path, Err: err}
	}
	return nil
}

// RemoveFile removes a file or symbolic link with unlink(2).
// Directories are rejected by the kernel (EISDIR or EPERM).
func (fs *FileSystem) RemoveFile(path string) error {
	if err := ignoringEINTR(func() error { return unix.Unlink(path) }); err != nil {
		return &os.PathError{Op: "unlink", Path: path, Err: err}
	}
	return nil
}

func ignoringEINTR(fn func() error) error {
	for {
		err := fn()
		if err != unix.EINTR {
			return err
		}
	}
}
