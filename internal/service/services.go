package service

import (
	"github.com/MKhiriev/go-ctf-game/internal/logger"
	"github.com/MKhiriev/go-ctf-game/internal/store"
)

type Services struct {
	AuthService AuthService
	GameService GameService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, logger),
		GameService: NewGameService(storages.ChallengeRepository, storages.GameRepository, logger),
	}
}
