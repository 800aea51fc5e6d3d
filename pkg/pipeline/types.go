package pipeline

import (
	"time"

	"github.com/user/idemfs/pkg/idemfs"
)

// StepInput is one resolved manifest step.
type StepInput struct {
	Index int // 1-based position in the manifest
	Op    idemfs.Op
	Path  string
}

// StepResult is the outcome of a StepInput.
type StepResult struct {
	StepInput

	// IsDir is set by is-directory steps.
	IsDir bool

	// Err is nil on success, including when the operation absorbed a
	// permitted error.
	Err error

	Duration time.Duration
}

// OK reports whether the step succeeded.
func (r StepResult) OK() bool {
	return r.Err == nil
}

// StepStage executes a single manifest step.
type StepStage = Stage[StepInput, StepResult]
