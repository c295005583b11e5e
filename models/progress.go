package models

import "time"

// Progress is the authoritative per-(user, challenge) solve state.
// At most one row exists per pair; it is created lazily on the first
// submission and updated on every subsequent one.
//
// LockedUntil is declared in the schema but unused by any operation.
type Progress struct {
	ProgressID    int64      `json:"-"`
	UserID        int64      `json:"user_id"`
	ChallengeID   int64      `json:"challenge_id"`
	IsSolved      bool       `json:"is_solved"`
	AttemptsCount int64      `json:"attempts_count"`
	SolvedAt      *time.Time `json:"solved_at,omitempty"`
	LockedUntil   *time.Time `json:"locked_until,omitempty"`
}

// TableName returns the name of the database table
// associated with the Progress model.
func (p Progress) TableName() string {
	return "user_challenge_progress"
}

// SolvedChallenge is a read-model row for the "my progress" view: one
// solved challenge joined with its solve timestamp.
type SolvedChallenge struct {
	Title    string    `json:"title"`
	Points   int64     `json:"points"`
	SolvedAt time.Time `json:"solved_at"`
}

// UserProgress aggregates the user summary with the ordered list of
// solved challenges (ascending by solve time).
type UserProgress struct {
	Username string            `json:"username"`
	Score    int64             `json:"score"`
	Solved   []SolvedChallenge `json:"solved"`
}
