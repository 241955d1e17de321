package model

import "time"

// FileResult is the outcome of watermarking a single image.
// Failures are recorded here rather than propagated, so one corrupt
// image never aborts the rest of the batch.
type FileResult struct {
	// Path is the input image path.
	Path string `json:"path"`

	// OutputPath is where the watermarked copy was written.
	// Empty when the file failed before a save was attempted.
	OutputPath string `json:"output_path,omitempty"`

	// Text is the watermark text that was (or would have been) rendered.
	Text string `json:"text,omitempty"`

	// Err holds the failure cause, nil on success.
	// It is excluded from JSON; ErrorMessage carries the serializable form.
	Err error `json:"-"`

	// ErrorMessage is the string form of Err for reports and storage.
	ErrorMessage string `json:"error,omitempty"`
}

// Succeeded reports whether the file was watermarked and saved.
func (r FileResult) Succeeded() bool {
	return r.Err == nil
}

// BatchReport aggregates the results of one watermarking run.
// Counters are created at batch start, incremented per file via Add,
// and rendered by the report writers at batch end.
type BatchReport struct {
	// RootPath is the file or directory the run was invoked on.
	RootPath string `json:"root_path"`

	// OutputDir is the computed sibling output directory.
	OutputDir string `json:"output_dir"`

	// StartedAt is when the batch began.
	StartedAt time.Time `json:"started_at"`

	// Duration is the total wall-clock time of the batch.
	Duration time.Duration `json:"duration"`

	// Total is the number of supported files attempted.
	// Unsupported files are never counted here.
	Total int `json:"total"`

	// Succeeded is the number of files watermarked and saved.
	Succeeded int `json:"succeeded"`

	// Failed is the number of files that could not be processed.
	// Invariant: Total = Succeeded + Failed.
	Failed int `json:"failed"`

	// SkippedUnsupported counts files ignored for their extension.
	// Informational only; these do not participate in Total.
	SkippedUnsupported int `json:"skipped_unsupported"`

	// Results holds the per-file outcomes in discovery order.
	Results []FileResult `json:"results"`
}

// NewBatchReport creates an empty report for the given root path.
func NewBatchReport(rootPath string) *BatchReport {
	return &BatchReport{
		RootPath:  rootPath,
		StartedAt: time.Now(),
		Results:   make([]FileResult, 0),
	}
}

// Add records a per-file result and updates the aggregate counters.
func (b *BatchReport) Add(result FileResult) {
	if result.Err != nil && result.ErrorMessage == "" {
		result.ErrorMessage = result.Err.Error()
	}

	b.Results = append(b.Results, result)
	b.Total++
	if result.Succeeded() {
		b.Succeeded++
	} else {
		b.Failed++
	}
}

// Failures returns only the failed per-file results.
func (b *BatchReport) Failures() []FileResult {
	failures := make([]FileResult, 0)
	for _, r := range b.Results {
		if !r.Succeeded() {
			failures = append(failures, r)
		}
	}
	return failures
}

// RunRecord is one persisted batch run, as stored in the history
// database and listed by the history command.
type RunRecord struct {
	// ID is the database row identifier.
	ID int64 `json:"id"`

	// RootPath is the input path of the run.
	RootPath string `json:"root_path"`

	// OutputDir is the output directory of the run.
	OutputDir string `json:"output_dir"`

	// Total, Succeeded, and Failed mirror the batch counters.
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Duration is the wall-clock time of the run.
	Duration time.Duration `json:"duration"`
}

// NewRunRecord builds a RunRecord from a completed batch report.
func NewRunRecord(report *BatchReport) RunRecord {
	return RunRecord{
		RootPath:  report.RootPath,
		OutputDir: report.OutputDir,
		Total:     report.Total,
		Succeeded: report.Succeeded,
		Failed:    report.Failed,
		StartedAt: report.StartedAt,
		Duration:  report.Duration,
	}
}
