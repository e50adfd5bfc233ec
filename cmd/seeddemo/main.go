// Command seeddemo loads a handful of demo items so the menu can be
// exercised against a non-empty database.
package main

import (
	"context"
	"os"
	"time"

	"invtrack/internal/config"
	"invtrack/internal/dto"
	"invtrack/internal/infra"
	"invtrack/internal/repository"
	"invtrack/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open inventory database")
	}

	inventory := service.NewInventoryService(repository.NewItemRepository(db))

	demo := []dto.UpsertItemRequest{
		{Name: "Widget", Category: "Hardware", Quantity: 25, ReorderLevel: 5},
		{Name: "Gasket", Category: "Hardware", Quantity: 4, ReorderLevel: 10},
		{Name: "Label roll", Category: "Supplies", Quantity: 120, ReorderLevel: 20},
		{Name: "Packing tape", Category: "Supplies", Quantity: 8, ReorderLevel: 6},
		{Name: "Manual", Category: "General", Quantity: 0, ReorderLevel: 2},
	}

	ctx := context.Background()
	for _, req := range demo {
		if _, err := inventory.Upsert(ctx, req); err != nil {
			log.Fatal().Err(err).Str("item", req.Name).Msg("seed failed")
		}
	}
	log.Info().Int("items", len(demo)).Str("db", cfg.DBPath).Msg("demo inventory seeded")
}
