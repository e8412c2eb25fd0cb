package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/repo"
	"github.com/light-bringer/backoffice-service/internal/config"
	"github.com/light-bringer/backoffice-service/internal/pkg/kv"
	"github.com/light-bringer/backoffice-service/internal/services"
)

func main() {
	raw := flag.Bool("raw", false, "Print the stored JSON of every collection")
	flag.Parse()

	if err := run(context.Background(), *raw); err != nil {
		log.Fatalf("Inspect failed: %v", err)
	}
}

func run(ctx context.Context, raw bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.StoreBackend == config.BackendMemory {
		return errors.New("STORE_BACKEND=memory has no persisted state to inspect")
	}

	store, err := services.OpenKVStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	keys := repo.NewKeys(cfg.KeyPrefix)
	fmt.Printf("Collections under %q (%s backend):\n", keys.Prefix(), cfg.StoreBackend)

	for _, key := range keys.All() {
		if err := describe(ctx, store, key, raw); err != nil {
			return err
		}
	}
	return nil
}

func describe(ctx context.Context, store kv.Store, key string, raw bool) error {
	value, ok, err := store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		fmt.Printf("  %-24s absent (seeded on next start)\n", key)
		return nil
	}

	var entries []json.RawMessage
	if json.Unmarshal(value, &entries) == nil {
		fmt.Printf("  %-24s %d entries, %d bytes\n", key, len(entries), len(value))
	} else {
		fmt.Printf("  %-24s object, %d bytes\n", key, len(value))
	}

	if raw {
		var pretty any
		if err := json.Unmarshal(value, &pretty); err != nil {
			return fmt.Errorf("failed to decode %s: %w", key, err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("    ", "  ")
		if err := enc.Encode(pretty); err != nil {
			return err
		}
	}
	return nil
}
