// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"

	"github.com/MKhiriev/go-ctf-game/internal/service"
	"github.com/MKhiriev/go-ctf-game/internal/store"
)

func humanizeAuthError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		return "Username is already taken"
	case errors.Is(err, service.ErrUnauthenticated):
		return "Invalid username or password"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Username and password are required"
	}

	return err.Error()
}
