package main

import (
	"context"
	"os"
	"time"

	"invtrack/internal/cli"
	"invtrack/internal/config"
	"invtrack/internal/infra"
	"invtrack/internal/repository"
	"invtrack/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger on stderr so menu output on stdout stays clean
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	db, err := infra.NewDatabase(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open inventory database")
	}

	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	inventory := service.NewInventoryService(itemRepo)
	orders := service.NewOrderService(orderRepo, itemRepo)
	export := service.NewExportService(itemRepo)

	log.Info().Str("db", cfg.DBPath).Msg("inventory tracker ready")

	menu := cli.NewMenu(os.Stdin, os.Stdout, inventory, orders, export, cfg.ExportPath)
	menu.Run(context.Background())

	log.Info().Msg("session ended")
}
