package models

import "time"

// User represents a player or organizer account.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique user identifier chosen at registration.
	Username string `json:"username"`

	// PasswordHash stores the derived credential for the account.
	// This value MUST be a derived value (hash output), never plaintext.
	PasswordHash string `json:"-"`

	// Score is the cumulative number of points earned from solved
	// challenges. It is mutated only by correct flag submissions.
	Score int64 `json:"score"`

	// IsOrganizer marks accounts allowed to administer challenges.
	IsOrganizer bool `json:"is_organizer"`

	// CreatedAt is the timestamp when the account was created.
	// Used for leaderboard tie-breaking and auditing.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
