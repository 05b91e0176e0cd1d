// main.go
package main

import (
	"context"
	"log"
	"os"

	"cinema-showtime/cmd"
	"cinema-showtime/internal/data/repository"
	"cinema-showtime/internal/usecase"
	"cinema-showtime/internal/wire"
	"cinema-showtime/pkg/database"
	"cinema-showtime/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// "serve" starts the HTTP API, anything else opens the menu
	mode := "menu"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug, mode == "serve")
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("mode", mode),
		zap.String("storage", config.Storage.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Open storage
	storage, err := database.NewStorage(config, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer storage.Close()

	// A broken document is logged and replaced by an empty state
	snapshot, err := storage.Load(context.Background())
	if err != nil {
		if !database.IsPersistenceError(err) {
			logger.Fatal("Failed to load state", zap.Error(err))
		}
		logger.Warn("Could not load saved state, starting empty", zap.Error(err))
	}

	repo := repository.NewRepository(snapshot, logger)
	service := usecase.NewService(repo, storage, logger)

	if mode == "serve" {
		app := wire.Wiring(service, logger)

		logger.Info("Starting HTTP server", zap.String("port", config.App.Port))
		if err := cmd.APIServer(app, config.App.Port, service, logger); err != nil {
			logger.Error("Server exited with error", zap.Error(err))
		}
		return
	}

	menu := cmd.NewMenu(os.Stdin, os.Stdout, service, logger)
	if err := menu.Run(context.Background()); err != nil {
		logger.Error("Menu exited with error", zap.Error(err))
	}
}
