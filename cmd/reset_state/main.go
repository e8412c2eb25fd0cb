package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/repo"
	"github.com/light-bringer/backoffice-service/internal/config"
	"github.com/light-bringer/backoffice-service/internal/services"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "Show what would be deleted without actually deleting")
	flag.Parse()

	if err := run(context.Background(), *dryRun); err != nil {
		log.Fatalf("Reset failed: %v", err)
	}
}

// run deletes every key under the configured prefix so the next start reseeds.
func run(ctx context.Context, dryRun bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.StoreBackend == config.BackendMemory {
		return errors.New("STORE_BACKEND=memory has no persisted state to reset")
	}

	store, err := services.OpenKVStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	prefix := repo.NewKeys(cfg.KeyPrefix).Prefix()
	keys, err := store.Keys(ctx, prefix)
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}

	log.Printf("Found %d keys under %q (%s backend)", len(keys), prefix, cfg.StoreBackend)
	for _, key := range keys {
		if dryRun {
			log.Printf("  would delete %s", key)
			continue
		}
		if err := store.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
		log.Printf("  deleted %s", key)
	}

	if !dryRun {
		log.Println("Reset completed successfully")
	}
	return nil
}
