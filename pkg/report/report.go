// Package report carries non-fatal findings through the generation
// pipeline. The pipeline itself is total (nothing in it errors), but
// stages still want to surface what they did (buildings placed, caps
// applied) and what looked off (degenerate camera, empty district).
package report

import "fmt"

// Stage indicates which pipeline stage produced the finding.
type Stage string

const (
	StageClassify Stage = "classify"
	StageLayout   Stage = "layout"
	StageMetadata Stage = "metadata"
	StageSpacing  Stage = "spacing"
	StageCull     Stage = "cull"
	StageScene    Stage = "scene"
	StageStats    Stage = "stats"
)

// Severity indicates how notable a finding is.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Finding is a single pipeline observation.
type Finding struct {
	Stage    Stage    `json:"stage"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Report is the collected output of one pipeline run.
type Report struct {
	Warnings []Finding `json:"warnings"`
	Info     []Finding `json:"info"`
	Summary  string    `json:"summary"`
}

// New creates an empty report.
func New() *Report {
	return &Report{
		Warnings: []Finding{},
		Info:     []Finding{},
	}
}

// AddWarning records a warning finding.
func (r *Report) AddWarning(stage Stage, format string, args ...any) {
	r.Warnings = append(r.Warnings, Finding{
		Stage:    stage,
		Severity: SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
	})
	r.updateSummary()
}

// AddInfo records an informational finding.
func (r *Report) AddInfo(stage Stage, format string, args ...any) {
	r.Info = append(r.Info, Finding{
		Stage:    stage,
		Severity: SeverityInfo,
		Message:  fmt.Sprintf(format, args...),
	})
	r.updateSummary()
}

// Merge combines another report into this one.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	r.updateSummary()
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d warnings, %d info", len(r.Warnings), len(r.Info))
}
