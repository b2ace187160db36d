package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"binsight/internal/classify"
	"binsight/internal/config"
	"binsight/internal/service"
	"binsight/internal/storage"
	"binsight/internal/vision"
)

func initStore(ctx context.Context) (service.Store, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initEngine builds the classification engine. Without an API key the
// engine runs heuristic-only; that is a supported mode, not an error.
func initEngine() (*classify.Engine, error) {
	var detector classify.LabelDetector

	if apiKey := viper.GetString("vision.api_key"); apiKey != "" {
		client, err := vision.NewClient(vision.Config{
			APIKey:   apiKey,
			Endpoint: viper.GetString("vision.endpoint"),
		})
		if err != nil {
			return nil, err
		}
		detector = client
	} else {
		slog.Debug("no vision API key configured, classification is heuristic-only")
	}

	delay := classify.DefaultFallbackDelay
	if viper.IsSet("classify.fallback_delay") {
		delay = viper.GetDuration("classify.fallback_delay")
		if delay <= 0 {
			delay = -1 // disabled
		}
	}

	return classify.NewEngine(classify.Config{
		Detector:      detector,
		FallbackDelay: delay,
	}), nil
}

func formatTimestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}
