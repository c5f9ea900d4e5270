package media

import "time"

// OutcomeStatus classifies the result of processing one item.
type OutcomeStatus string

const (
	StatusSuccess OutcomeStatus = "success"
	StatusFailed  OutcomeStatus = "failed"
	StatusSkipped OutcomeStatus = "skipped"
)

// Outcome records the result of one download attempt. It is created once per
// item per run and never mutated; a retry produces a new outcome.
type Outcome struct {
	Item       Candidate
	Status     OutcomeStatus
	LocalPaths []string
	Error      string
	Timestamp  time.Time
}

// NewOutcome constructs an outcome stamped with the current time.
func NewOutcome(item Candidate, status OutcomeStatus, paths []string, errMessage string) Outcome {
	return Outcome{
		Item:       item,
		Status:     status,
		LocalPaths: append([]string(nil), paths...),
		Error:      errMessage,
		Timestamp:  time.Now().UTC(),
	}
}
