// Package orchestrator applies manifests step by step.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/user/idemfs/pkg/idemfs"
	"github.com/user/idemfs/pkg/manifest"
	"github.com/user/idemfs/pkg/pipeline"
	"github.com/user/idemfs/pkg/ports"
)

// ErrNotDirectory is returned by an is-directory step whose path is not a
// directory.
var ErrNotDirectory = errors.New("not a directory")

// Config controls how a manifest is applied.
type Config struct {
	// ContinueOnError runs the remaining steps after a failure and returns
	// all failures joined. By default the first failure stops the run.
	ContinueOnError bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{}
}

// NewStepStage adapts fsys into a stage that executes one manifest step.
func NewStepStage(fsys *idemfs.FS) pipeline.StepStage {
	return pipeline.StageFunc[pipeline.StepInput, pipeline.StepResult](
		func(ctx context.Context, in pipeline.StepInput) (pipeline.StepResult, error) {
			res := pipeline.StepResult{StepInput: in}
			var err error
			switch in.Op {
			case idemfs.OpCreateDir:
				err = fsys.CreateDir(in.Path)
			case idemfs.OpCreateFile:
				err = fsys.CreateFile(in.Path)
			case idemfs.OpCreateFileAll:
				err = fsys.CreateFileAll(in.Path)
			case idemfs.OpCreateDirAll:
				err = fsys.CreateDirAll(in.Path)
			case idemfs.OpRemoveDir:
				err = fsys.RemoveDir(in.Path)
			case idemfs.OpRemoveDirAll:
				err = fsys.RemoveDirAll(in.Path)
			case idemfs.OpRemoveFile:
				err = fsys.RemoveFile(in.Path)
			case idemfs.OpRemove:
				err = fsys.Remove(in.Path)
			case idemfs.OpIsDir:
				res.IsDir, err = fsys.IsDir(in.Path)
				if err == nil && !res.IsDir {
					err = &fs.PathError{Op: in.Op.String(), Path: in.Path, Err: ErrNotDirectory}
				}
			default:
				err = fmt.Errorf("unsupported operation %s", in.Op)
			}
			return res, err
		})
}

// Orchestrator runs manifest steps through a step stage in order.
type Orchestrator struct {
	stage  pipeline.StepStage
	logger ports.Logger
}

// New creates a new Orchestrator.
func New(stage pipeline.StepStage, logger ports.Logger) *Orchestrator {
	return &Orchestrator{
		stage:  pipeline.Timed(stage),
		logger: logger,
	}
}

// Run applies every step of m. The context is checked before each step;
// the filesystem operations themselves are not interruptible.
func (o *Orchestrator) Run(ctx context.Context, m *manifest.Manifest, config Config) (RunResult, error) {
	start := time.Now()
	total := len(m.Steps)
	result := RunResult{Steps: make([]pipeline.StepResult, 0, total)}

	o.logger.Info("Applying manifest %s (%d steps)", sourceName(m), total)

	var errs []error
	for i, step := range m.Steps {
		if err := ctx.Err(); err != nil {
			result.Duration = time.Since(start)
			return result, errors.Join(append(errs, err)...)
		}

		op, err := idemfs.ParseOp(step.Op)
		if err != nil {
			result.Duration = time.Since(start)
			return result, fmt.Errorf("step %d: %w", i+1, err)
		}
		in := pipeline.StepInput{Index: i + 1, Op: op, Path: m.Resolve(step)}

		o.logger.Info("Step %d/%d: %s %s", in.Index, total, in.Op, in.Path)
		res, err := o.stage.Execute(ctx, in)
		result.Steps = append(result.Steps, res)
		if err == nil {
			continue
		}

		result.Failed++
		o.logger.Error("Step %d failed: %s %s: %s", in.Index, in.Op, in.Path, err)
		errs = append(errs, fmt.Errorf("step %d (%s %s): %w", in.Index, in.Op, in.Path, err))
		if !config.ContinueOnError {
			break
		}
		if i < total-1 {
			o.logger.Warn("Continuing after failure: %s", err)
		}
	}

	result.Duration = time.Since(start)
	if len(errs) == 0 {
		o.logger.Info("Applied %d steps in %d ms", len(result.Steps), result.Duration.Milliseconds())
	}
	return result, errors.Join(errs...)
}

func sourceName(m *manifest.Manifest) string {
	if m.Source == "" {
		return "(inline)"
	}
	return m.Source
}

// RunResult contains the results of a manifest run for summary generation.
type RunResult struct {
	Steps    []pipeline.StepResult
	Failed   int
	Duration time.Duration
}

// Succeeded returns the number of steps that completed without error.
func (r RunResult) Succeeded() int {
	return len(r.Steps) - r.Failed
}
