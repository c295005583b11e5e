// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-ctf-game/internal/logger"
	"github.com/MKhiriev/go-ctf-game/internal/service"
	"github.com/MKhiriev/go-ctf-game/internal/tui"
)

// App runs the interactive game: login flow first, then the main loop until
// the player quits. A logout restarts the login flow.
type App struct {
	services *service.Services
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui *tui.TUI, logger *logger.Logger) *App {
	return &App{services: services, tui: ui, logger: logger}
}

func (a *App) Run() error {
	// the session logger travels in the context so every service call logs
	// with the same session fields
	return a.run(a.logger.WithContext(context.Background()))
}

func (a *App) run(ctx context.Context) error {
	for {
		user, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		logout, err := a.tui.MainLoop(ctx, user)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}
	}
}
