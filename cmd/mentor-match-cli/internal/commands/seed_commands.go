package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	v1 "github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/api/rest/v1"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/app"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/infrastructure/persistence"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
)

// SeedCommandHandler encapsulates logic for loading profile fixtures via CLI.
type SeedCommandHandler struct {
	logger logger.Logger
}

// NewSeedCommandHandler initializes and returns a SeedCommandHandler
// instance with a configured logger.
func NewSeedCommandHandler() (*SeedCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &SeedCommandHandler{logger: loggerInstance}, nil
}

// SeedCmd loads mentee and mentor fixtures from JSON files into the database
func (commandHandler *SeedCommandHandler) SeedCmd(cmd *cobra.Command, _ []string) {
	menteesFile, err := cmd.Flags().GetString("mentees-file")
	if err != nil {
		commandHandler.logger.Error("invalid mentees-file flag ", err)
		return
	}

	mentorsFile, err := cmd.Flags().GetString("mentors-file")
	if err != nil {
		commandHandler.logger.Error("invalid mentors-file flag ", err)
		return
	}

	if menteesFile == "" && mentorsFile == "" {
		commandHandler.logger.Error("at least one of mentees-file or mentors-file is required")
		return
	}

	ctx := context.Background()
	db, err := connectDatabase(ctx, cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() {
		_ = persistence.CloseMongoConnection(ctx, db)
	}()

	if menteesFile != "" {
		if err := commandHandler.seedMentees(ctx, db, menteesFile); err != nil {
			commandHandler.logger.Error(err)
			return
		}
	}

	if mentorsFile != "" {
		if err := commandHandler.seedMentors(ctx, db, mentorsFile); err != nil {
			commandHandler.logger.Error(err)
			return
		}
	}
}

func (commandHandler *SeedCommandHandler) seedMentees(ctx context.Context, db *mongo.Database, path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read mentee fixtures: %w", err)
	}

	var fixtures []v1.MenteeRequest
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("failed to parse mentee fixtures: %w", err)
	}

	menteeRepo, err := persistence.NewMongoMenteeRepository(ctx, db, commandHandler.logger)
	if err != nil {
		return err
	}

	menteeService, err := app.NewMenteeService(menteeRepo, commandHandler.logger)
	if err != nil {
		return err
	}

	for _, fixture := range fixtures {
		if err := fixture.Validate(); err != nil {
			return fmt.Errorf("invalid mentee fixture for %s %s: %w", fixture.FirstName, fixture.LastName, err)
		}
		if _, err := menteeService.Register(ctx, fixture.ToDomain()); err != nil {
			return fmt.Errorf("failed to register mentee %s %s: %w", fixture.FirstName, fixture.LastName, err)
		}
	}

	commandHandler.logger.Info("Seeded ", len(fixtures), " mentees from ", path)
	return nil
}

func (commandHandler *SeedCommandHandler) seedMentors(ctx context.Context, db *mongo.Database, path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read mentor fixtures: %w", err)
	}

	var fixtures []v1.MentorRequest
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("failed to parse mentor fixtures: %w", err)
	}

	mentorRepo, err := persistence.NewMongoMentorRepository(ctx, db, commandHandler.logger)
	if err != nil {
		return err
	}

	mentorService, err := app.NewMentorService(mentorRepo, commandHandler.logger)
	if err != nil {
		return err
	}

	for _, fixture := range fixtures {
		if err := fixture.Validate(); err != nil {
			return fmt.Errorf("invalid mentor fixture for %s %s: %w", fixture.FirstName, fixture.LastName, err)
		}
		if _, err := mentorService.Register(ctx, fixture.ToDomain()); err != nil {
			return fmt.Errorf("failed to register mentor %s %s: %w", fixture.FirstName, fixture.LastName, err)
		}
	}

	commandHandler.logger.Info("Seeded ", len(fixtures), " mentors from ", path)
	return nil
}

// InitSeedCommands registers seed-related commands
func InitSeedCommands(rootCmd *cobra.Command) error {
	handler, err := NewSeedCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create seed command handler %w", err)
	}

	var seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Load mentee and mentor fixtures into the database",
		Run:   handler.SeedCmd,
	}
	seedCmd.Flags().StringP("mentees-file", "", "", "Path to a JSON file with mentee fixtures")
	seedCmd.Flags().StringP("mentors-file", "", "", "Path to a JSON file with mentor fixtures")
	addDatabaseFlags(seedCmd)
	rootCmd.AddCommand(seedCmd)

	return nil
}
