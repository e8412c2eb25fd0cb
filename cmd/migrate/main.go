package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/backoffice-service/internal/pkg/logging"
)

// Default for local development with emulator
const defaultDatabase = "projects/test-project/instances/dev-instance/databases/backoffice-db"

var (
	databasePath = flag.String("database", "", "Spanner database path (defaults to SPANNER_DATABASE)")
	migrateDir   = flag.String("migrations", "migrations", "Directory containing migration SQL files")
)

func main() {
	_ = godotenv.Load()
	flag.Parse()

	logger := logging.New(os.Getenv("LOG_LEVEL"), os.Stdout)

	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		logger.WithField("host", host).Info("Using Spanner emulator")
	}

	path := *databasePath
	if path == "" {
		path = getEnvOrDefault("SPANNER_DATABASE", defaultDatabase)
	}
	db, err := parseDatabasePath(path)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := run(context.Background(), db, logger); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	logger.Info("Migrations completed successfully!")
}

func run(ctx context.Context, db databaseRef, logger logrus.FieldLogger) error {
	if err := ensureInstance(ctx, db, logger); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}

	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	if err := ensureDatabase(ctx, adminClient, db, logger); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}

	if err := applyMigrations(ctx, adminClient, db, logger); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

func ensureInstance(ctx context.Context, db databaseRef, logger logrus.FieldLogger) error {
	logger.WithField("instance", db.Instance).Info("Ensuring instance exists...")

	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer instanceAdmin.Close()

	_, err = instanceAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: db.InstancePath()})
	if err == nil {
		logger.Info("Instance already exists")
		return nil
	}
	if status.Code(err) != codes.NotFound {
		logger.WithError(err).Warn("unexpected error checking instance")
		return nil
	}

	logger.Info("Creating instance...")
	op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     db.ProjectPath(),
		InstanceId: db.Instance,
		Instance: &instancepb.Instance{
			Config:      db.ProjectPath() + "/instanceConfigs/emulator-config",
			DisplayName: "Development Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) != codes.AlreadyExists {
			return fmt.Errorf("failed to create instance: %w", err)
		}
		logger.Info("Instance already exists")
		return nil
	}

	// The emulator may complete before Wait is called.
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		logger.WithError(err).Warn("instance creation did not report completion")
	}

	logger.Info("Instance created successfully")
	return nil
}

func ensureDatabase(ctx context.Context, adminClient *database.DatabaseAdminClient, db databaseRef, logger logrus.FieldLogger) error {
	logger.WithField("database", db.Database).Info("Ensuring database exists...")

	_, err := adminClient.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: db.Path()})
	if err == nil {
		logger.Info("Database already exists")
		return nil
	}

	if status.Code(err) != codes.NotFound {
		// For other errors on emulator, just proceed - the DB might exist
		if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
			logger.WithError(err).Warn("Proceeding with database (emulator mode)")
			return nil
		}
		return fmt.Errorf("failed to check database: %w", err)
	}

	logger.Info("Creating database...")
	op, err := adminClient.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          db.InstancePath(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", db.Database),
	})
	if err != nil {
		if status.Code(err) != codes.AlreadyExists {
			return fmt.Errorf("failed to create database: %w", err)
		}
		logger.Info("Database already exists")
		return nil
	}

	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}

	logger.Info("Database created successfully")
	return nil
}

// applyMigrations runs every *.sql file in name order, skipping CREATE TABLE
// statements for tables the database already has.
func applyMigrations(ctx context.Context, adminClient *database.DatabaseAdminClient, db databaseRef, logger logrus.FieldLogger) error {
	logger.WithField("dir", *migrateDir).Info("Applying migrations...")

	files, err := filepath.Glob(filepath.Join(*migrateDir, "*.sql"))
	if err != nil {
		return fmt.Errorf("failed to list migration files: %w", err)
	}
	if len(files) == 0 {
		logger.Info("No migration files found")
		return nil
	}

	current, err := adminClient.GetDatabaseDdl(ctx, &databasepb.GetDatabaseDdlRequest{Database: db.Path()})
	if err != nil {
		return fmt.Errorf("failed to read current schema: %w", err)
	}
	existing := existingTables(current.GetStatements())

	for _, file := range files {
		migrationName := filepath.Base(file)
		entry := logger.WithField("migration", migrationName)

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		statements := pendingStatements(splitDDLStatements(string(content)), existing)
		if len(statements) == 0 {
			entry.Info("Already applied")
			continue
		}

		op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   db.Path(),
			Statements: statements,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", migrationName, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", migrationName, err)
		}

		for name := range existingTables(statements) {
			existing[name] = true
		}
		entry.WithField("statements", len(statements)).Info("Successfully applied")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
