// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildListActiveChallengesQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildListActiveChallengesQuery()
	require.NoError(t, err)

	// listing takes no parameters
	require.Empty(t, args)

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from challenges")
	require.Contains(t, q, "where")
	require.Contains(t, q, "is_active")
	require.Contains(t, q, "order by points asc, id asc")

	// columns presence (subset / key columns)
	cols := []string{
		"id",
		"title",
		"description",
		"category",
		"flag",
		"points",
		"max_attempts",
		"is_active",
		"created_at",
	}
	for _, c := range cols {
		require.Contains(t, q, c)
	}
}

func Test_buildLeaderboardQuery(t *testing.T) {
	query, args, err := buildLeaderboardQuery()
	require.NoError(t, err)

	// one parameter: the positive-score cutoff
	require.Len(t, args, 1)
	require.Equal(t, 0, args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "from users")
	require.Contains(t, q, "score > $1")
	require.Contains(t, q, "order by score desc, created_at asc")

	for _, c := range []string{"username", "score", "created_at"} {
		require.Contains(t, q, c)
	}
}

func Test_buildSolvedChallengesQuery(t *testing.T) {
	userID := int64(42)

	query, args, err := buildSolvedChallengesQuery(userID)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 1)
	require.Equal(t, userID, args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "from user_challenge_progress p")
	require.Contains(t, q, "join challenges c on c.id = p.challenge_id")
	require.Contains(t, q, "p.user_id = $1")
	require.Contains(t, q, "p.is_solved")
	require.Contains(t, q, "order by p.solved_at asc")

	for _, c := range []string{"c.title", "c.points", "p.solved_at"} {
		require.Contains(t, query, c)
	}
}
