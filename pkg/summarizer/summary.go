package summarizer

import (
	"time"

	"github.com/user/idemfs/pkg/orchestrator"
)

// Summary contains the data collected while applying a manifest.
type Summary struct {
	GeneratedAt time.Time `yaml:"generated_at"`

	Manifest ManifestInfo  `yaml:"manifest"`
	Settings Settings      `yaml:"settings"`
	Steps    []StepSummary `yaml:"steps"`
	Totals   Totals        `yaml:"totals"`
}

// ManifestInfo identifies the applied manifest.
type ManifestInfo struct {
	Source string `yaml:"source,omitempty"`
	Root   string `yaml:"root,omitempty"`
}

// Settings contains the runner configuration.
type Settings struct {
	ContinueOnError bool `yaml:"continue_on_error"`
}

// StepSummary describes one executed step.
type StepSummary struct {
	Index      int    `yaml:"index"`
	Op         string `yaml:"op"`
	Path       string `yaml:"path"`
	Error      string `yaml:"error,omitempty"` // empty on success
	DurationMs int64  `yaml:"duration_ms"`
}

// Totals aggregates the step outcomes.
type Totals struct {
	Steps      int   `yaml:"steps"`
	Succeeded  int   `yaml:"succeeded"`
	Failed     int   `yaml:"failed"`
	DurationMs int64 `yaml:"duration_ms"`
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithManifest sets the manifest source and root.
func (b *Builder) WithManifest(source, root string) *Builder {
	b.summary.Manifest = ManifestInfo{
		Source: source,
		Root:   root,
	}
	return b
}

// WithSettings sets runner settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithRun fills steps and totals from an orchestrator result.
func (b *Builder) WithRun(result orchestrator.RunResult) *Builder {
	steps := make([]StepSummary, 0, len(result.Steps))
	for _, r := range result.Steps {
		s := StepSummary{
			Index:      r.Index,
			Op:         r.Op.String(),
			Path:       r.Path,
			DurationMs: r.Duration.Milliseconds(),
		}
		if r.Err != nil {
			s.Error = r.Err.Error()
		}
		steps = append(steps, s)
	}
	b.summary.Steps = steps
	b.summary.Totals = Totals{
		Steps:      len(result.Steps),
		Succeeded:  result.Succeeded(),
		Failed:     result.Failed,
		DurationMs: result.Duration.Milliseconds(),
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
