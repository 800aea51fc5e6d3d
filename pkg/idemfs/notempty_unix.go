//go:build unix

package idemfs

import (
	"errors"

	"golang.org/x/sys/unix"
)

func isDirNotEmpty(err error) bool {
	return errors.Is(err, unix.ENOTEMPTY)
}
