package summarizer

import (
	"errors"
	"testing"
	"time"

	"github.com/user/idemfs/pkg/idemfs"
	"github.com/user/idemfs/pkg/orchestrator"
	"github.com/user/idemfs/pkg/pipeline"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_WithManifest(t *testing.T) {
	summary := NewBuilder().
		WithManifest("ensure.yaml", "/work").
		WithSettings(Settings{ContinueOnError: true}).
		Build()

	if summary.Manifest.Source != "ensure.yaml" || summary.Manifest.Root != "/work" {
		t.Errorf("unexpected manifest info: %+v", summary.Manifest)
	}
	if !summary.Settings.ContinueOnError {
		t.Error("expected ContinueOnError to be set")
	}
}

func TestBuilder_WithRun(t *testing.T) {
	result := orchestrator.RunResult{
		Steps: []pipeline.StepResult{
			{
				StepInput: pipeline.StepInput{Index: 1, Op: idemfs.OpCreateDirAll, Path: "/work/out"},
				Duration:  3 * time.Millisecond,
			},
			{
				StepInput: pipeline.StepInput{Index: 2, Op: idemfs.OpRemoveFile, Path: "/work/locked"},
				Err:       errors.New("permission denied"),
			},
		},
		Failed:   1,
		Duration: 10 * time.Millisecond,
	}

	summary := NewBuilder().WithRun(result).Build()

	if len(summary.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(summary.Steps))
	}
	if summary.Steps[0].Op != "create-directory-with-parents" || summary.Steps[0].DurationMs != 3 {
		t.Errorf("unexpected first step: %+v", summary.Steps[0])
	}
	if summary.Steps[1].Error != "permission denied" {
		t.Errorf("unexpected second step: %+v", summary.Steps[1])
	}
	want := Totals{Steps: 2, Succeeded: 1, Failed: 1, DurationMs: 10}
	if summary.Totals != want {
		t.Errorf("Totals = %+v, want %+v", summary.Totals, want)
	}
}
