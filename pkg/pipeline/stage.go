// Package pipeline provides the stage abstraction the manifest runner is
// built on: a step goes in, a result comes out.
package pipeline

import (
	"context"
	"time"
)

// Stage turns an input into an output.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc is a function adapter for Stage interface.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute implements Stage interface.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}

// Timed wraps a StepStage so that every result records how long the step
// took, whether or not it failed.
func Timed(s StepStage) StepStage {
	return StageFunc[StepInput, StepResult](func(ctx context.Context, in StepInput) (StepResult, error) {
		start := time.Now()
		res, err := s.Execute(ctx, in)
		res.StepInput = in
		res.Err = err
		res.Duration = time.Since(start)
		return res, err
	})
}
