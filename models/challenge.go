package models

import "time"

// Challenge is a single CTF task players can solve by submitting its flag.
//
// The stored Flag is the plaintext secret and is compared verbatim (after
// whitespace trimming) on submission. MaxAttempts is persisted but not
// enforced by any operation.
type Challenge struct {
	ChallengeID int64  `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`

	// Flag is the secret string players must submit. Never shown in UI.
	Flag string `json:"-"`

	// Points awarded on the first correct submission.
	Points int64 `json:"points"`

	// MaxAttempts limits submissions per user; -1 means unlimited.
	MaxAttempts int64 `json:"max_attempts"`

	// IsActive is a soft-delete marker; inactive challenges are hidden
	// from every read path.
	IsActive bool `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Challenge model.
func (c Challenge) TableName() string {
	return "challenges"
}
