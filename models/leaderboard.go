package models

import "time"

// LeaderboardRow is a single scoreboard entry. Rows are ordered by score
// descending; on equal score the earlier-registered user ranks higher.
type LeaderboardRow struct {
	Username string    `json:"username"`
	Score    int64     `json:"score"`
	JoinedAt time.Time `json:"joined_at"`
}
