package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

// SentimentCommandHandler encapsulates logic for reading analysis results via CLI.
type SentimentCommandHandler struct {
	logger logger.Logger
}

// NewSentimentCommandHandler initializes and returns a SentimentCommandHandler instance
// with a configured logger.
func NewSentimentCommandHandler() (*SentimentCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &SentimentCommandHandler{
		logger: loggerInstance,
	}, nil
}

// SummariesCmd prints the newest market intelligence summaries
func (commandHandler *SentimentCommandHandler) SummariesCmd(cmd *cobra.Command, _ []string) {
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

	summaries, err := services.sentimentQueryService.RecentSummaries(cmd.Context(), limit)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, summary := range summaries {
		fmt.Println(summary)
	}
	commandHandler.logger.Info("Found ", len(summaries), " summaries")
}

// ListSentimentCmd prints processed content matching the given filters
func (commandHandler *SentimentCommandHandler) ListSentimentCmd(cmd *cobra.Command, _ []string) {
	category, err := cmd.Flags().GetString("category")
	if err != nil {
		commandHandler.logger.Error("invalid category flag ", err)
		return
	}
	minImpact, err := cmd.Flags().GetFloat64("min-impact")
	if err != nil {
		commandHandler.logger.Error("invalid min-impact flag ", err)
		return
	}
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

	query := content.NewProcessedContentQuery()
	query.Category = category
	query.MinImpact = minImpact
	query.Limit = limit

	results, err := services.sentimentQueryService.List(cmd.Context(), query)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, processed := range results {
		fmt.Printf("%s  sentiment=%+.2f impact=%.2f  [%s]\n",
			processed.ProcessedAt.Format("2006-01-02 15:04"),
			processed.SentimentScore,
			processed.ImpactScore,
			strings.Join(processed.Categories, ","),
		)
	}
	commandHandler.logger.Info("Found ", len(results), " processed posts")
}

// AnalyzeCmd runs the model ensemble on ad-hoc text without storing anything
func (commandHandler *SentimentCommandHandler) AnalyzeCmd(cmd *cobra.Command, _ []string) {
	text, err := cmd.Flags().GetString("text")
	if err != nil {
		commandHandler.logger.Error("invalid text flag ", err)
		return
	}
	if text == "" {
		commandHandler.logger.Error("text must not be empty")
		return
	}

	analyzer, err := buildAnalyzer(commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	analysis, err := analyzer.Analyze(cmd.Context(), text)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("sentiment: %+.2f\n", analysis.SentimentScore)
	fmt.Printf("impact:    %.2f\n", analysis.ImpactScore)
	fmt.Printf("crypto:    %t\n", analysis.IsCryptoRelated)
	fmt.Printf("categories: %s\n", strings.Join(analysis.Categories, ", "))
	fmt.Printf("keywords:   %s\n", strings.Join(analysis.Keywords, ", "))
	fmt.Printf("entities:   %s\n", strings.Join(analysis.EntitiesMentioned, ", "))
}

// InitSentimentCommands registers sentiment-related commands
func InitSentimentCommands(rootCmd *cobra.Command) error {
	handler, err := NewSentimentCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create sentiment command handler %w", err)
	}

	var summariesCmd = &cobra.Command{
		Use:   "summaries",
		Short: "Print the newest market intelligence summaries",
		Run:   handler.SummariesCmd,
	}
	summariesCmd.Flags().IntP("limit", "", 20, "Maximum number of summaries to print")
	rootCmd.AddCommand(summariesCmd)

	var listSentimentCmd = &cobra.Command{
		Use:   "list-sentiment",
		Short: "List processed posts with their sentiment scores",
		Run:   handler.ListSentimentCmd,
	}
	listSentimentCmd.Flags().StringP("category", "", "", "Only show posts tagged with this category")
	listSentimentCmd.Flags().Float64P("min-impact", "", 0, "Minimum impact score between 0 and 1")
	listSentimentCmd.Flags().IntP("limit", "", 100, "Maximum number of posts to print")
	rootCmd.AddCommand(listSentimentCmd)

	var analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Run the model ensemble on ad-hoc text",
		Run:   handler.AnalyzeCmd,
	}
	analyzeCmd.Flags().StringP("text", "", "", "Text to analyze")
	rootCmd.AddCommand(analyzeCmd)

	return nil
}
