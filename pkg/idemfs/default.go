package idemfs

import (
	"sync/atomic"

	"github.com/user/idemfs/pkg/adapters/logger"
	"github.com/user/idemfs/pkg/adapters/osfilesystem"
)

var defaultFS atomic.Pointer[FS]

func init() {
	defaultFS.Store(New(osfilesystem.New(), logger.NewNoop()))
}

// Default returns the FS used by the package-level functions.
func Default() *FS {
	return defaultFS.Load()
}

// SetDefault replaces the FS used by the package-level functions.
func SetDefault(f *FS) {
	defaultFS.Store(f)
}

// CreateDir calls Default().CreateDir.
func CreateDir(path string) error { return Default().CreateDir(path) }

// CreateFile calls Default().CreateFile.
func CreateFile(path string) error { return Default().CreateFile(path) }

// CreateFileAll calls Default().CreateFileAll.
func CreateFileAll(path string) error { return Default().CreateFileAll(path) }

// CreateDirAll calls Default().CreateDirAll.
func CreateDirAll(path string) error { return Default().CreateDirAll(path) }

// RemoveDir calls Default().RemoveDir.
func RemoveDir(path string) error { return Default().RemoveDir(path) }

// RemoveDirAll calls Default().RemoveDirAll.
func RemoveDirAll(path string) error { return Default().RemoveDirAll(path) }

// RemoveFile calls Default().RemoveFile.
func RemoveFile(path string) error { return Default().RemoveFile(path) }

// Remove calls Default().Remove.
func Remove(path string) error { return Default().Remove(path) }

// IsDir calls Default().IsDir.
func IsDir(path string) (bool, error) { return Default().IsDir(path) }
