package ports

import (
	"errors"
	"os"
)

// ErrDirNotEmpty is returned by FileSystem implementations that have no
// native errno for a non-empty directory removal (such as in-memory fakes).
var ErrDirNotEmpty = errors.New("directory not empty")

// FileSystem abstracts the host primitives the idempotent operations are
// built on. Each method performs exactly one OS call and reports the raw
// error; no method suppresses errors on its own.
type FileSystem interface {
	// Mkdir creates a single directory. The parent must already exist.
	Mkdir(path string) error

	// MkdirAll creates a directory and all missing parent directories.
	MkdirAll(path string) error

	// CreateNew creates an empty file, failing if anything exists at path.
	// The handle is closed before returning.
	CreateNew(path string) error

	// RemoveDir removes an empty directory. It never removes a file.
	RemoveDir(path string) error

	// RemoveAll removes a directory and everything below it.
	RemoveAll(path string) error

	// RemoveFile removes a file or symbolic link. It never removes a directory.
	RemoveFile(path string) error

	// Lstat returns file info without following a trailing symbolic link.
	Lstat(path string) (os.FileInfo, error)

	// Stat returns file info, following symbolic links.
	Stat(path string) (os.FileInfo, error)

	// Readlink returns the target of a symbolic link.
	Readlink(path string) (string, error)

	// Exists checks if a file or directory exists.
	Exists(path string) (bool, error)
}
