// Package main is the entry point for the sentiment-cli application.
// It initializes the root command and registers the account, pipeline and
// sentiment sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/xLang1234/PythonBE/cmd/cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "sentiment-cli",
		Short: "Crypto sentiment pipeline CLI tool",
		Long: `sentiment-cli is a command-line tool for the crypto sentiment pipeline.
It manages the set of tracked accounts, runs one-off collection and analysis
passes, and prints stored sentiment results and summaries.

Configuration is read from the file named by CONFIG_PATH (default
configs/collector.yaml). OpenRouter API keys are read from the environment
using the configured key prefix; a local .env file is honored.`,
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
	if err := commands.InitAccountCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize account commands: %w", err)
	}

	if err := commands.InitPipelineCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize pipeline commands: %w", err)
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
