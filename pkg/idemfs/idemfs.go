// Package idemfs provides idempotent filesystem operations.
//
// Each operation calls a single host primitive and treats the error kinds
// that mean "already in the requested state" as success: creating something
// that exists, or removing something that is gone. Any other error is
// returned unchanged. Nothing is cached and nothing is retried; every call
// asks the OS again.
//
// The package-level functions use the host filesystem and discard logs.
// Use New to supply a different ports.FileSystem or a logger that records
// the permitted errors at debug level.
package idemfs

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"

	"github.com/user/idemfs/pkg/ports"
)

// FS applies the idempotency policy on top of a ports.FileSystem.
type FS struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates an FS over the given primitives.
func New(fs ports.FileSystem, logger ports.Logger) *FS {
	return &FS{
		fs:     fs,
		logger: logger.WithComponent("idemfs"),
	}
}

// CreateDir creates a directory. An existing entry at path is ignored.
// Parents are not created.
func (f *FS) CreateDir(path string) error {
	return f.permit(OpCreateDir, path, f.fs.Mkdir(path))
}

// CreateFile creates an empty file, roughly like touch(1) without the
// timestamp update. An existing file is left untouched.
func (f *FS) CreateFile(path string) error {
	return f.permit(OpCreateFile, path, f.fs.CreateNew(path))
}

// CreateFileAll creates an empty file and any missing parent directories.
func (f *FS) CreateFileAll(path string) error {
	if parent := filepath.Dir(path); parent != "." && parent != path {
		// An unreadable parent falls through to CreateDirAll, which reports
		// the real failure.
		if exists, err := f.fs.Exists(parent); err != nil || !exists {
			if err := f.CreateDirAll(parent); err != nil {
				return err
			}
		}
	}
	return f.permit(OpCreateFileAll, path, f.fs.CreateNew(path))
}

// CreateDirAll creates a directory and all of its missing parents.
func (f *FS) CreateDirAll(path string) error {
	return f.permit(OpCreateDirAll, path, f.fs.MkdirAll(path))
}

// RemoveDir removes an empty directory. Missing and populated directories
// are both ignored; the contents of a populated directory are never touched.
func (f *FS) RemoveDir(path string) error {
	return f.permit(OpRemoveDir, path, f.fs.RemoveDir(path))
}

// RemoveDirAll removes a directory and everything in it. A missing
// directory is ignored.
func (f *FS) RemoveDirAll(path string) error {
	return f.permit(OpRemoveDirAll, path, f.fs.RemoveAll(path))
}

// RemoveFile removes a file or symbolic link. A missing file is ignored.
func (f *FS) RemoveFile(path string) error {
	return f.permit(OpRemoveFile, path, f.fs.RemoveFile(path))
}

// Remove removes whatever is at path. Symbolic links and other
// non-directories are removed with RemoveFile, so a link to a directory
// removes only the link. Directories are removed with RemoveDirAll.
//
// The type check and the removal are separate calls; if path changes type
// in between, the wrong branch may run and its error is returned.
func (f *FS) Remove(path string) error {
	fi, err := f.fs.Lstat(path)
	if err == nil && !fi.IsDir() {
		return f.RemoveFile(path)
	}
	return f.RemoveDirAll(path)
}

// IsDir reports whether path is a directory, following symbolic links.
// A missing path, or one below a regular file, is not a directory. A
// symbolic link whose target cannot be resolved is an error.
func (f *FS) IsDir(path string) (bool, error) {
	fi, err := f.fs.Lstat(path)
	if err != nil {
		if Classify(err) == KindNotFound || errors.Is(err, syscall.ENOTDIR) {
			return false, nil
		}
		return false, err
	}
	if fi.IsDir() {
		return true, nil
	}
	if fi.Mode()&os.ModeSymlink == 0 {
		return false, nil
	}

	target, err := f.fs.Readlink(path)
	if err != nil {
		return false, err
	}
	if !filepath.IsAbs(target) {
		// Left uncleaned: ".." in target must be resolved by the OS, which
		// follows a symlinked parent where filepath.Join would not.
		target = filepath.Dir(path) + string(os.PathSeparator) + target
	}
	fi, err = f.fs.Stat(target)
	if err != nil {
		return false, err
	}
	return fi.IsDir(), nil
}

func (f *FS) permit(op Op, path string, err error) error {
	if err == nil {
		return nil
	}
	kind := Classify(err)
	if !IsPermitted(op, kind) {
		return err
	}
	f.logger.Debug("Permitting %s for %s %s", kind, op, path)
	return nil
}
