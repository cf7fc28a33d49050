package genindex

// Status is the outcome of processing one discovered document.
type Status string

// Status constants.
const (
	StatusProcessed Status = "processed"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Progress reports the outcome for one document during a run.
type Progress struct {
	Path      string
	Completed int
	Total     int
	Status    Status

	// Reason is set when Status is StatusSkipped.
	Reason SkipReason

	// Record is set when Status is StatusProcessed.
	Record *Record

	// Error is set when Status is StatusFailed.
	Error error
}

// ProgressFunc is called once per discovered document.
type ProgressFunc func(Progress)
