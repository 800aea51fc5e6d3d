package idemfs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/user/idemfs/pkg/ports"
)

// Op identifies one of the idempotent operations.
type Op int

const (
	OpCreateDir Op = iota
	OpCreateFile
	OpCreateFileAll
	OpCreateDirAll
	OpRemoveDir
	OpRemoveDirAll
	OpRemoveFile
	OpRemove
	OpIsDir
)

var opNames = [...]string{
	OpCreateDir:     "create-directory",
	OpCreateFile:    "create-file",
	OpCreateFileAll: "create-file-with-parents",
	OpCreateDirAll:  "create-directory-with-parents",
	OpRemoveDir:     "remove-directory",
	OpRemoveDirAll:  "remove-directory-recursive",
	OpRemoveFile:    "remove-file",
	OpRemove:        "remove-path",
	OpIsDir:         "is-directory",
}

// String returns the kebab-case name of the operation.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("op(%d)", int(o))
	}
	return opNames[o]
}

// Ops returns every operation in declaration order.
func Ops() []Op {
	ops := make([]Op, len(opNames))
	for i := range opNames {
		ops[i] = Op(i)
	}
	return ops
}

// ParseOp returns the operation with the given name.
func ParseOp(name string) (Op, error) {
	for i, n := range opNames {
		if n == name {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", name)
}

// Kind classifies an error returned by a filesystem primitive.
type Kind int

const (
	KindOther Kind = iota
	KindAlreadyExists
	KindNotFound
	KindDirNotEmpty
)

// String returns the name of the classification.
func (k Kind) String() string {
	switch k {
	case KindAlreadyExists:
		return "already-exists"
	case KindNotFound:
		return "not-found"
	case KindDirNotEmpty:
		return "directory-not-empty"
	default:
		return "other"
	}
}

// Classify maps err onto a Kind.
//
// Not-empty must be tested first: on both unix and windows the errno for a
// non-empty directory also satisfies errors.Is(err, fs.ErrExist).
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindOther
	case errors.Is(err, ports.ErrDirNotEmpty) || isDirNotEmpty(err):
		return KindDirNotEmpty
	case errors.Is(err, fs.ErrExist):
		return KindAlreadyExists
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	default:
		return KindOther
	}
}

var permitted = map[Op][]Kind{
	OpCreateDir:     {KindAlreadyExists},
	OpCreateFile:    {KindAlreadyExists},
	OpCreateFileAll: {KindAlreadyExists},
	OpCreateDirAll:  {KindAlreadyExists},
	OpRemoveDir:     {KindNotFound, KindDirNotEmpty},
	OpRemoveDirAll:  {KindNotFound},
	OpRemoveFile:    {KindNotFound},
}

// IsPermitted reports whether an error of the given kind counts as success
// for op. KindOther is never permitted. OpRemove has no entry of its own;
// it inherits from whichever removal it delegates to.
func IsPermitted(op Op, kind Kind) bool {
	for _, k := range permitted[op] {
		if k == kind {
			return true
		}
	}
	return false
}

// Permitted returns the kinds op treats as success.
func Permitted(op Op) []Kind {
	return append([]Kind(nil), permitted[op]...)
}
