package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ctf-game/models"
)

// NavigateTo switches the router to another page; an optional Payload is
// re-dispatched as a message to the target page.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the authentication flow. Err == nil means the user is
// authenticated and the login program should quit.
type LoginResult struct {
	User models.User
	Err  error
}

// RegisterResult reports the outcome of an async registration command.
type RegisterResult struct {
	Username string
	Err      error
}

// RegisterSuccessNotice is delivered to the menu page after a successful
// registration.
type RegisterSuccessNotice struct {
	Username string
}
