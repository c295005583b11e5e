// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// go-ctf-game store and terminal UI.
//
// All Msg* constants are human-readable message strings that are shown to
// the player to describe the outcome of an operation. Keeping them in one
// place ensures consistent wording throughout the game.
package app

const (
	// MsgChallengeNotFound is returned when a flag is submitted for a
	// challenge that does not exist or is no longer active.
	MsgChallengeNotFound = "Challenge not found"

	// MsgAlreadySolved is returned when a player re-submits a flag for a
	// challenge they have already solved.
	MsgAlreadySolved = "Challenge already solved"

	// MsgIncorrectFlag is returned when the submitted flag does not match
	// the challenge's flag.
	MsgIncorrectFlag = "Incorrect flag. Try again!"

	// MsgCorrectFlagFormat is the accepted-submission message; the format
	// verb is the points awarded.
	MsgCorrectFlagFormat = "Correct! You earned %d points!"
)
