//go:build windows

package idemfs

import (
	"errors"

	"golang.org/x/sys/windows"
)

func isDirNotEmpty(err error) bool {
	return errors.Is(err, windows.ERROR_DIR_NOT_EMPTY)
}
