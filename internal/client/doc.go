// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive game application runtime.
//
// It wires terminal UI flows and game services into a single process
// lifecycle: authenticate, play, logout or quit.
package client
