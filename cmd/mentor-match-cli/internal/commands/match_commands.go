package commands

import (
	"context"
	"fmt"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/app"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/matching"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/infrastructure/persistence"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MatchCommandHandler encapsulates logic for ranking mentors via CLI.
type MatchCommandHandler struct {
	logger logger.Logger
}

// NewMatchCommandHandler initializes and returns a MatchCommandHandler
// instance with a configured logger.
func NewMatchCommandHandler() (*MatchCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &MatchCommandHandler{logger: loggerInstance}, nil
}

// MatchCmd ranks mentors for a mentee profile and prints their profile IDs
func (commandHandler *MatchCommandHandler) MatchCmd(cmd *cobra.Command, _ []string) {
	profileID, err := cmd.Flags().GetString("profile-id")
	if err != nil {
		commandHandler.logger.Error("invalid profile-id flag ", err)
		return
	}

	strategyFlag, err := cmd.Flags().GetString("strategy")
	if err != nil {
		commandHandler.logger.Error("invalid strategy flag ", err)
		return
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		commandHandler.logger.Error("invalid limit flag ", err)
		return
	}

	strategy, err := matching.ParseStrategy(strategyFlag)
	if err != nil {
		commandHandler.logger.Error(err)
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

	menteeRepo, err := persistence.NewMongoMenteeRepository(ctx, db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	mentorRepo, err := persistence.NewMongoMentorRepository(ctx, db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	matcher, err := app.NewMatcherService(menteeRepo, mentorRepo, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	mentorIDs, err := matcher.Match(ctx, &matching.Request{
		MenteeProfileID: profileID,
		Limit:           limit,
		Strategy:        strategy,
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Found ", len(mentorIDs), " mentors for mentee ", profileID)
	for rank, mentorID := range mentorIDs {
		fmt.Printf("%d. %s\n", rank+1, mentorID)
	}
}

// InitMatchCommands registers match-related commands
func InitMatchCommands(rootCmd *cobra.Command) error {
	handler, err := NewMatchCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create match command handler %w", err)
	}

	var matchCmd = &cobra.Command{
		Use:   "match",
		Short: "Rank mentors for a mentee profile",
		Run:   handler.MatchCmd,
	}
	matchCmd.Flags().StringP("profile-id", "", "", "Mentee profile ID to match")
	matchCmd.Flags().StringP("strategy", "", "", "Matching strategy (sortsearch, sort, search, random)")
	matchCmd.Flags().IntP("limit", "", 5, "Maximum number of mentors to return")
	addDatabaseFlags(matchCmd)
	rootCmd.AddCommand(matchCmd)

	return nil
}
