// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Boolean columns are used as bare predicates ("is_active", "is_solved")
// so the same SQL runs on PostgreSQL booleans and SQLite 0/1 integers.
const (
	createUser = `INSERT INTO users (username, password_hash, is_organizer)
    VALUES ($1, $2, $3)
    RETURNING id, username, password_hash, score, is_organizer, created_at;`

	findUserByUsername = `SELECT id, username, password_hash, score, is_organizer, created_at
    FROM users
    WHERE username = $1;`

	createChallenge = `INSERT INTO challenges (title, description, category, flag, points, max_attempts)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, title, description, category, flag, points, max_attempts, is_active, created_at;`

	getActiveChallenge = `SELECT id, title, description, category, flag, points, max_attempts, is_active, created_at
    FROM challenges
    WHERE id = $1 AND is_active;`

	insertSubmission = `INSERT INTO submissions (user_id, challenge_id, submitted_flag, is_correct)
    VALUES ($1, $2, $3, $4);`

	getPairProgress = `SELECT id, is_solved, attempts_count
    FROM user_challenge_progress
    WHERE user_id = $1 AND challenge_id = $2;`

	insertPairProgress = `INSERT INTO user_challenge_progress (user_id, challenge_id, attempts_count, is_solved, solved_at)
    VALUES ($1, $2, 1, $3, $4);`

	updatePairProgress = `UPDATE user_challenge_progress SET
        attempts_count = attempts_count + 1,
        is_solved = $1,
        solved_at = $2
    WHERE user_id = $3 AND challenge_id = $4;`

	addUserScore = `UPDATE users SET score = score + $1 WHERE id = $2;`

	getUserSummary = `SELECT username, score FROM users WHERE id = $1;`
)

// buildListActiveChallengesQuery builds the active-challenge listing.
// Ordering is points ascending with id as the deterministic tie-break, so
// repeated reads with no intervening writes return identical sequences.
func buildListActiveChallengesQuery() (string, []any, error) {
	return sq.Select(
		"id",
		"title",
		"description",
		"category",
		"flag",
		"points",
		"max_attempts",
		"is_active",
		"created_at",
	).
		From("challenges").
		Where(sq.Expr("is_active")).
		OrderBy("points ASC", "id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildLeaderboardQuery builds the scoreboard: users with a positive score,
// ordered by score descending, earlier registrations ranking above later
// ones on a tie.
func buildLeaderboardQuery() (string, []any, error) {
	return sq.Select("username", "score", "created_at").
		From("users").
		Where(sq.Gt{"score": 0}).
		OrderBy("score DESC", "created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildSolvedChallengesQuery builds the solved-challenge view for one user,
// ascending by solve time.
func buildSolvedChallengesQuery(userID int64) (string, []any, error) {
	return sq.Select("c.title", "c.points", "p.solved_at").
		From("user_challenge_progress p").
		Join("challenges c ON c.id = p.challenge_id").
		Where(sq.And{
			sq.Eq{"p.user_id": userID},
			sq.Expr("p.is_solved"),
		}).
		OrderBy("p.solved_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
