// Package main seeds the database with sample creators and tips for
// local development.
package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/creator-tips/internal/config"
	"github.com/creator-tips/internal/logging"
	"github.com/creator-tips/internal/models"
	"github.com/creator-tips/internal/service"
	"github.com/creator-tips/internal/storage"
	"github.com/creator-tips/internal/types"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	postgres, err := storage.NewPostgresDB(&cfg.Database.Postgres)
	if err != nil {
		log.Fatalf("Failed to connect to Postgres: %v", err)
	}
	defer postgres.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, postgres); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Database seeding completed successfully")
}

func seed(ctx context.Context, db *storage.PostgresDB) error {
	creatorRepo := storage.NewCreatorRepository(db)
	tipRepo := storage.NewTipRepository(db)
	notificationRepo := storage.NewNotificationRepository(db)

	logger := logging.NewLogger(logging.LevelInfo, logging.FormatText)
	notifications := service.NewNotificationService(notificationRepo, logger)

	creators := []*models.Creator{
		{
			Address: "0x1234567890123456789012345678901234567890",
			Handle:  "alice",
			Avatar:  "https://i.imgur.com/placeholder1.jpg",
			Bio:     "Digital artist and NFT creator",
			FID:     1001,
		},
		{
			Address: "0x2345678901234567890123456789012345678901",
			Handle:  "bob",
			Avatar:  "https://i.imgur.com/placeholder2.jpg",
			Bio:     "Crypto educator and content creator",
			FID:     1002,
		},
		{
			Address: "0x3456789012345678901234567890123456789012",
			Handle:  "charlie",
			Avatar:  "https://i.imgur.com/placeholder3.jpg",
			Bio:     "DeFi researcher and writer",
			FID:     1003,
		},
	}

	for _, creator := range creators {
		if err := creatorRepo.UpsertProfile(ctx, creator); err != nil {
			return err
		}
		log.Printf("Added creator: %s", creator.Handle)
	}

	// Tips flow through the repository so creator aggregates stay
	// consistent with the tip records
	tips := []*models.Tip{
		{
			TipperAddress:  "0x9876543210987654321098765432109876543210",
			TipperFID:      2001,
			TipperHandle:   "supporter1",
			CreatorAddress: creators[0].Address,
			CreatorHandle:  creators[0].Handle,
			Amount:         25.0,
			Token:          types.TokenUSDC,
			TxHash:         "0xabcdef1234567890abcdef1234567890abcdef1234567890abcdef1234567890",
			Message:        "Love your art!",
			Status:         types.TipStatusCompleted,
		},
		{
			TipperAddress:  "0x8765432109876543210987654321098765432109",
			TipperFID:      2002,
			TipperHandle:   "supporter2",
			CreatorAddress: creators[1].Address,
			CreatorHandle:  creators[1].Handle,
			Amount:         10.0,
			Token:          types.TokenUSDC,
			TxHash:         "0xfedcba0987654321fedcba0987654321fedcba0987654321fedcba0987654321",
			Message:        "Great educational content!",
			Status:         types.TipStatusCompleted,
		},
	}

	for _, tip := range tips {
		if _, err := tipRepo.Save(ctx, tip); err != nil {
			return err
		}
		log.Printf("Added tip: %v %s to %s", tip.Amount, tip.Token, tip.CreatorHandle)

		data, err := json.Marshal(models.TipReceivedData{
			Amount:       tip.Amount,
			Token:        tip.Token,
			TipperHandle: tip.TipperHandle,
			Message:      tip.Message,
			TxHash:       tip.TxHash,
		})
		if err != nil {
			return err
		}
		if _, err := notifications.Send(ctx, tip.CreatorAddress, types.NotificationTipReceived, data); err != nil {
			return err
		}
	}

	return nil
}
