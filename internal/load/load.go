// Package load bulk-loads the normalized CSV tables into Postgres.
// Each load truncates the target tables first, so reloads are
// idempotent, and is recorded as a run in load_runs.
package load

import "time"

// Run statuses.
const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
)

// DefaultBatchSize is the number of rows queued per insert batch.
const DefaultBatchSize = 1000

// Run is one bulk-load execution.
type Run struct {
	ID         string
	StartedAt  time.Time
	FinishedAt *time.Time
	Status     string // RUNNING, COMPLETED, FAILED
	CSVDir     string
	Books      int
	Authors    int
	Links      int
	Borrowers  int
	Error      string
}

// Counts holds the post-load row counts of the four target tables.
type Counts struct {
	Books     int
	Authors   int
	Links     int
	Borrowers int
}
