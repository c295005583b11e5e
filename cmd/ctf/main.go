package main

import (
	"fmt"

	"github.com/MKhiriev/go-ctf-game/internal/client"
	"github.com/MKhiriev/go-ctf-game/internal/config"
	"github.com/MKhiriev/go-ctf-game/internal/logger"
	"github.com/MKhiriev/go-ctf-game/internal/service"
	"github.com/MKhiriev/go-ctf-game/internal/store"
	"github.com/MKhiriev/go-ctf-game/internal/tui"
	"github.com/MKhiriev/go-ctf-game/internal/utils"
	"github.com/MKhiriev/go-ctf-game/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewGameLogger("ctf-game")

	// one id per process run ties all log entries of a game session together
	sessionID := utils.NewUUIDGenerator().Generate()
	sessionLog := &logger.Logger{Logger: log.With().Str("session", sessionID).Logger()}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		sessionLog.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.Storage, sessionLog)
	if err != nil {
		sessionLog.Fatal().Err(err).Msg("create storages")
	}

	services := service.NewServices(storages, sessionLog)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, sessionLog)
	if err != nil {
		sessionLog.Fatal().Err(err).Msg("error creating ui")
	}

	app := client.NewApp(services, ui, sessionLog)
	if err = app.Run(); err != nil {
		sessionLog.Fatal().Err(err).Msg("game run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
