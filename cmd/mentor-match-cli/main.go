// Package main is the entry point for the mentor-match-cli application.
// It initializes the root command and registers the match, seed and
// sentiment sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/Lambda-School-Labs/underdog-devs-ds-a/cmd/mentor-match-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "mentor-match-cli",
		Short: "Mentor matching operations CLI tool",
		Long: `mentor-match-cli is a command-line tool for the mentorship platform.
Supports ranking mentors for a mentee, seeding profile fixtures into the
database and scoring free text for sentiment.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMatchCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize match commands: %w", err)
	}

	if err := commands.InitSeedCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize seed commands: %w", err)
	}

	if err := commands.InitSentimentCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize sentiment commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
