package main

import (
	"github.com/joho/godotenv"

	"github.com/mggonzales/discord-bot/bot"
	"github.com/mggonzales/discord-bot/config"
	"github.com/mggonzales/discord-bot/db"
	"github.com/mggonzales/discord-bot/logger"
	"github.com/mggonzales/discord-bot/web"
)

func main() {
	_ = godotenv.Load()

	if err := config.LoadConfig(); err != nil {
		logger.Init("discord-bot", false)
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Init("discord-bot", config.Cfg.Debug)

	store, err := db.Open(config.Cfg.Storage)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}
	defer store.Close()

	logger.Info().Str("backend", config.Cfg.Storage.Backend).Msg("store initialized")

	go func() {
		if err := web.Start(config.Cfg.Port, config.Cfg.Debug); err != nil {
			logger.Error().Err(err).Msg("web server stopped")
		}
	}()

	if err := bot.Start(store); err != nil {
		logger.Fatal().Err(err).Msg("bot stopped")
	}
}
