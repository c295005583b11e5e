package models

import "time"

// Submission is an immutable audit log entry: one row per flag attempt,
// regardless of outcome.
type Submission struct {
	SubmissionID  int64     `json:"-"`
	UserID        int64     `json:"user_id"`
	ChallengeID   int64     `json:"challenge_id"`
	SubmittedFlag string    `json:"submitted_flag"`
	IsCorrect     bool      `json:"is_correct"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// TableName returns the name of the database table
// associated with the Submission model.
func (s Submission) TableName() string {
	return "submissions"
}

// SubmissionResult is the outcome of a flag submission returned to the
// presentation layer. Message holds the user-facing status line.
type SubmissionResult struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message"`
}
