// main.go
package main

import (
	"log"

	"retreat-booking/cmd"
	"retreat-booking/internal/data/repository"
	"retreat-booking/internal/wire"
	"retreat-booking/pkg/database"
	"retreat-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Connect to Redis; the availability cache degrades to recomputes when
	// Redis is disabled or unreachable.
	rdb, err := database.InitRedis(config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, availability cache disabled", zap.Error(err))
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
		logger.Info("Redis connected successfully")
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, rdb, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
