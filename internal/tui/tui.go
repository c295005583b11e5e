package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-ctf-game/internal/logger"
	"github.com/MKhiriev/go-ctf-game/internal/service"
	"github.com/MKhiriev/go-ctf-game/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
}

func New(services *service.Services, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// LoginFlow runs the menu/login/register program until the player is
// authenticated or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoop runs the game program for an authenticated player. It returns
// logout=true when the player logged out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, user)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
