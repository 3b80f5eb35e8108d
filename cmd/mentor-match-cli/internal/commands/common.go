package commands

import (
	"context"
	"fmt"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/infrastructure/persistence"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/config"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// addDatabaseFlags registers the shared MongoDB connection flags.
func addDatabaseFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("mongo-uri", "", "mongodb://localhost:27017", "MongoDB connection URI")
	cmd.Flags().StringP("database", "", "UnderdogDevs", "Database name")
}

// connectDatabase reads the shared flags and opens a database handle.
func connectDatabase(ctx context.Context, cmd *cobra.Command) (*mongo.Database, error) {
	uri, err := cmd.Flags().GetString("mongo-uri")
	if err != nil {
		return nil, fmt.Errorf("invalid mongo-uri flag: %w", err)
	}

	name, err := cmd.Flags().GetString("database")
	if err != nil {
		return nil, fmt.Errorf("invalid database flag: %w", err)
	}

	settings := config.DatabaseSettings{URI: uri, Name: name}
	db, err := persistence.NewMongoConnection(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}
