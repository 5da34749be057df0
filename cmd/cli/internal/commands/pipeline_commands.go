package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

// PipelineCommandHandler encapsulates logic for running pipeline passes via CLI.
type PipelineCommandHandler struct {
	logger logger.Logger
}

// NewPipelineCommandHandler initializes and returns a PipelineCommandHandler instance
// with a configured logger.
func NewPipelineCommandHandler() (*PipelineCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &PipelineCommandHandler{
		logger: loggerInstance,
	}, nil
}

// CollectCmd runs a single collection pass over all active accounts
func (commandHandler *PipelineCommandHandler) CollectCmd(cmd *cobra.Command, _ []string) {
	services, err := buildServices(commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() { _ = services.Close() }()

	stored, err := services.collectionService.CollectAll(cmd.Context())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Collection pass stored ", stored, " new posts")
}

// ProcessCmd runs a single analysis pass over unprocessed content
func (commandHandler *PipelineCommandHandler) ProcessCmd(cmd *cobra.Command, _ []string) {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		commandHandler.logger.Error("invalid limit flag ", err)
		return
	}

	services, err := buildServices(commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() { _ = services.Close() }()

	processed, err := services.analysisService.ProcessUnprocessed(cmd.Context(), limit)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Analysis pass processed ", processed, " posts")
}

// InitPipelineCommands registers pipeline-related commands
func InitPipelineCommands(rootCmd *cobra.Command) error {
	handler, err := NewPipelineCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create pipeline command handler %w", err)
	}

	var collectCmd = &cobra.Command{
		Use:   "collect",
		Short: "Run one collection pass over all active accounts",
		Run:   handler.CollectCmd,
	}
	rootCmd.AddCommand(collectCmd)

	var processCmd = &cobra.Command{
		Use:   "process",
		Short: "Analyze collected posts that have no sentiment yet",
		Run:   handler.ProcessCmd,
	}
	processCmd.Flags().IntP("limit", "", 10, "Maximum number of posts to analyze")
	rootCmd.AddCommand(processCmd)

	return nil
}
