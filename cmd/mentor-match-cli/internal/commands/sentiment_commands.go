package commands

import (
	"fmt"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/feedback"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/infrastructure/sentiment"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// SentimentCommandHandler encapsulates logic for scoring text via CLI.
type SentimentCommandHandler struct {
	analyzer feedback.Analyzer
	logger   logger.Logger
}

// NewSentimentCommandHandler initializes and returns a SentimentCommandHandler
// instance with configured logger and analyzer.
func NewSentimentCommandHandler() (*SentimentCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	analyzer, err := sentiment.NewLexiconAnalyzer(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create sentiment analyzer: %w", err)
	}

	return &SentimentCommandHandler{
		analyzer: analyzer,
		logger:   loggerInstance,
	}, nil
}

// ScoreCmd scores a text for sentiment and prints the compound score and label
func (commandHandler *SentimentCommandHandler) ScoreCmd(cmd *cobra.Command, _ []string) {
	text, err := cmd.Flags().GetString("text")
	if err != nil {
		commandHandler.logger.Error("invalid text flag ", err)
		return
	}

	result, err := commandHandler.analyzer.Score(text)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("compound: %.4f\nlabel: %s\n", result.Compound, result.Label)
}

// InitSentimentCommands registers sentiment-related commands
func InitSentimentCommands(rootCmd *cobra.Command) error {
	handler, err := NewSentimentCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create sentiment command handler %w", err)
	}

	var scoreCmd = &cobra.Command{
		Use:   "sentiment",
		Short: "Score a text for sentiment",
		Run:   handler.ScoreCmd,
	}
	scoreCmd.Flags().StringP("text", "", "", "Text to score")
	rootCmd.AddCommand(scoreCmd)

	return nil
}
