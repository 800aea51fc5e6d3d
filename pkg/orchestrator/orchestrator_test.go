package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/user/idemfs/pkg/adapters/logger"
	"github.com/user/idemfs/pkg/idemfs"
	"github.com/user/idemfs/pkg/manifest"
	"github.com/user/idemfs/pkg/mocks"
	"github.com/user/idemfs/pkg/pipeline"
	"github.com/user/idemfs/pkg/ports"
)

// mockStepStage records the steps it receives and fails on selected indexes.
type mockStepStage struct {
	inputs []pipeline.StepInput
	fail   map[int]error
}

func (m *mockStepStage) Execute(ctx context.Context, input pipeline.StepInput) (pipeline.StepResult, error) {
	m.inputs = append(m.inputs, input)
	return pipeline.StepResult{}, m.fail[input.Index]
}

func testManifest() *manifest.Manifest {
	return &manifest.Manifest{
		Root: "/work",
		Steps: []manifest.Step{
			{Op: "create-directory-with-parents", Path: "out"},
			{Op: "create-file", Path: "out/a"},
			{Op: "remove-path", Path: "/tmp/stale"},
		},
	}
}

func TestOrchestrator_Run(t *testing.T) {
	stage := &mockStepStage{}
	log := mocks.NewLogger()
	orch := New(stage, log)

	result, err := orch.Run(context.Background(), testManifest(), DefaultConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(stage.inputs) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(stage.inputs))
	}
	want := []pipeline.StepInput{
		{Index: 1, Op: idemfs.OpCreateDirAll, Path: "/work/out"},
		{Index: 2, Op: idemfs.OpCreateFile, Path: "/work/out/a"},
		{Index: 3, Op: idemfs.OpRemove, Path: "/tmp/stale"},
	}
	for i, w := range want {
		if stage.inputs[i] != w {
			t.Errorf("step %d = %+v, want %+v", i, stage.inputs[i], w)
		}
	}

	if result.Failed != 0 || result.Succeeded() != 3 {
		t.Errorf("unexpected counts: failed=%d succeeded=%d", result.Failed, result.Succeeded())
	}
	if len(log.Messages(ports.LevelInfo)) != 5 {
		t.Errorf("expected 5 info messages, got %v", log.Messages(ports.LevelInfo))
	}
}

func TestOrchestrator_PercentInPathIsLoggedAsWritten(t *testing.T) {
	var out, errOut bytes.Buffer
	stage := &mockStepStage{fail: map[int]error{2: errors.New("50% off")}}
	orch := New(stage, logger.NewConsoleWriters(ports.LevelInfo, &out, &errOut))

	m := &manifest.Manifest{
		Root: "/work",
		Steps: []manifest.Step{
			{Op: "create-directory", Path: "100%done"},
			{Op: "create-file", Path: "%s%d"},
		},
	}
	if _, err := orch.Run(context.Background(), m, Config{ContinueOnError: true}); err == nil {
		t.Fatal("expected the second step to fail")
	}

	if !strings.Contains(out.String(), "Step 1/2: create-directory /work/100%done") {
		t.Errorf("info output = %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Step 2 failed: create-file /work/%s%d: 50% off") {
		t.Errorf("error output = %q", errOut.String())
	}
	if all := out.String() + errOut.String(); strings.Contains(all, "%!") {
		t.Errorf("format verbs leaked into output: %q", all)
	}
}

func TestOrchestrator_StopsAtFirstFailure(t *testing.T) {
	boom := errors.New("boom")
	stage := &mockStepStage{fail: map[int]error{2: boom}}
	log := mocks.NewLogger()

	result, err := New(stage, log).Run(context.Background(), testManifest(), DefaultConfig())
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if !strings.Contains(err.Error(), "step 2 (create-file /work/out/a)") {
		t.Errorf("error should name the step, got %q", err)
	}
	if len(stage.inputs) != 2 {
		t.Errorf("expected the run to stop after step 2, ran %d steps", len(stage.inputs))
	}
	if result.Failed != 1 || len(result.Steps) != 2 {
		t.Errorf("unexpected result: %+v", result)
	}
	if len(log.Messages(ports.LevelError)) != 1 {
		t.Errorf("expected one error message, got %v", log.Messages(ports.LevelError))
	}
}

func TestOrchestrator_ContinueOnError(t *testing.T) {
	first := errors.New("first")
	third := errors.New("third")
	stage := &mockStepStage{fail: map[int]error{1: first, 3: third}}
	log := mocks.NewLogger()

	result, err := New(stage, log).Run(context.Background(), testManifest(), Config{ContinueOnError: true})
	if !errors.Is(err, first) || !errors.Is(err, third) {
		t.Fatalf("expected both failures joined, got %v", err)
	}
	if len(stage.inputs) != 3 {
		t.Errorf("expected all steps to run, ran %d", len(stage.inputs))
	}
	if result.Failed != 2 || result.Succeeded() != 1 {
		t.Errorf("unexpected counts: failed=%d succeeded=%d", result.Failed, result.Succeeded())
	}
	if result.Steps[0].OK() || !result.Steps[1].OK() {
		t.Errorf("unexpected step results: %+v", result.Steps)
	}
	if len(log.Messages(ports.LevelWarn)) != 1 {
		t.Errorf("expected one continue warning, got %v", log.Messages(ports.LevelWarn))
	}
}

func TestOrchestrator_Cancelled(t *testing.T) {
	stage := &mockStepStage{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New(stage, mocks.NewLogger()).Run(ctx, testManifest(), DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(stage.inputs) != 0 || len(result.Steps) != 0 {
		t.Error("no step should run after cancellation")
	}
}

func TestStepStage_AgainstFakeFilesystem(t *testing.T) {
	m := mocks.NewFileSystem()
	m.AddFile("/work/stale/file")
	m.AddFile("/work/old.log")
	fsys := idemfs.New(m, mocks.NewLogger())

	mf := &manifest.Manifest{
		Root: "/work",
		Steps: []manifest.Step{
			{Op: "create-directory", Path: "out"},
			{Op: "create-directory", Path: "out"},
			{Op: "create-file-with-parents", Path: "out/logs/app.log"},
			{Op: "remove-path", Path: "stale"},
			{Op: "remove-file", Path: "old.log"},
			{Op: "remove-file", Path: "old.log"},
			{Op: "is-directory", Path: "out/logs"},
			{Op: "create-directory-with-parents", Path: "empty/a"},
			{Op: "remove-directory", Path: "empty/a"},
			{Op: "remove-directory-recursive", Path: "empty"},
		},
	}

	result, err := New(NewStepStage(fsys), mocks.NewLogger()).Run(context.Background(), mf, DefaultConfig())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Succeeded() != len(mf.Steps) {
		t.Errorf("expected all steps to succeed: %+v", result)
	}
	if !result.Steps[6].IsDir {
		t.Error("is-directory step should report true")
	}
	if !m.HasFile("/work/out/logs/app.log") {
		t.Error("expected log file to be created")
	}
	for _, gone := range []string{"/work/stale", "/work/old.log", "/work/empty"} {
		if m.HasDir(gone) || m.HasFile(gone) {
			t.Errorf("expected %s to be removed", gone)
		}
	}
}

func TestStepStage_IsDirAssertion(t *testing.T) {
	m := mocks.NewFileSystem()
	m.AddFile("/work/file")
	stage := NewStepStage(idemfs.New(m, mocks.NewLogger()))

	res, err := stage.Execute(context.Background(), pipeline.StepInput{Index: 1, Op: idemfs.OpIsDir, Path: "/work/file"})
	if !errors.Is(err, ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got %v", err)
	}
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) || pathErr.Path != "/work/file" {
		t.Errorf("expected a PathError naming the path, got %v", err)
	}
	if res.IsDir {
		t.Error("IsDir should be false")
	}
}
