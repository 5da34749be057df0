package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xLang1234/PythonBE/internal/domain/feed"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

// AccountCommandHandler encapsulates logic for managing tracked accounts via CLI.
type AccountCommandHandler struct {
	logger logger.Logger
}

// NewAccountCommandHandler initializes and returns an AccountCommandHandler instance
// with a configured logger.
func NewAccountCommandHandler() (*AccountCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &AccountCommandHandler{
		logger: loggerInstance,
	}, nil
}

// AddAccountCmd registers a platform account for collection
func (commandHandler *AccountCommandHandler) AddAccountCmd(cmd *cobra.Command, _ []string) {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		commandHandler.logger.Error("invalid username flag ", err)
		return
	}

	services, err := buildServices(commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() { _ = services.Close() }()

	entity, err := services.entityService.AddAccount(cmd.Context(), username)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Tracking @", entity.Username, " (id ", entity.ID, ", ", entity.FollowersCount, " followers)")
}

// ListAccountsCmd prints the tracked accounts
func (commandHandler *AccountCommandHandler) ListAccountsCmd(cmd *cobra.Command, _ []string) {
	activeOnly, err := cmd.Flags().GetBool("active-only")
	if err != nil {
		commandHandler.logger.Error("invalid active-only flag ", err)
		return
	}

	services, err := buildServices(commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() { _ = services.Close() }()

	query := feed.NewEntityQuery()
	query.ActiveOnly = activeOnly

	entities, err := services.entityService.List(cmd.Context(), query)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, entity := range entities {
		state := "active"
		if !entity.IsActive {
			state = "inactive"
		}
		fmt.Printf("%s  @%-20s %-8s %d followers\n", entity.ID, entity.Username, state, entity.FollowersCount)
	}
	commandHandler.logger.Info("Found ", len(entities), " tracked accounts")
}

// SeedAccountsCmd registers the built-in account list
func (commandHandler *AccountCommandHandler) SeedAccountsCmd(cmd *cobra.Command, _ []string) {
	services, err := buildServices(commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() { _ = services.Close() }()

	added, err := services.entityService.SeedDefaultAccounts(cmd.Context())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Seeded ", added, " default accounts")
}

// DeactivateAccountCmd stops collection for an account without deleting its history
func (commandHandler *AccountCommandHandler) DeactivateAccountCmd(cmd *cobra.Command, _ []string) {
	entityID, err := cmd.Flags().GetString("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	services, err := buildServices(commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() { _ = services.Close() }()

	if err := services.entityService.Deactivate(cmd.Context(), entityID); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Deactivated account ", entityID)
}

// InitAccountCommands registers account-related commands
func InitAccountCommands(rootCmd *cobra.Command) error {
	handler, err := NewAccountCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create account command handler %w", err)
	}

	var addAccountCmd = &cobra.Command{
		Use:   "add-account",
		Short: "Register a platform account for collection",
		Run:   handler.AddAccountCmd,
	}
	addAccountCmd.Flags().StringP("username", "", "", "Platform username to track")
	rootCmd.AddCommand(addAccountCmd)

	var listAccountsCmd = &cobra.Command{
		Use:   "list-accounts",
		Short: "List tracked accounts",
		Run:   handler.ListAccountsCmd,
	}
	listAccountsCmd.Flags().BoolP("active-only", "", false, "Only show accounts that are still collected")
	rootCmd.AddCommand(listAccountsCmd)

	var seedAccountsCmd = &cobra.Command{
		Use:   "seed-accounts",
		Short: "Register the built-in list of crypto accounts",
		Run:   handler.SeedAccountsCmd,
	}
	rootCmd.AddCommand(seedAccountsCmd)

	var deactivateAccountCmd = &cobra.Command{
		Use:   "deactivate-account",
		Short: "Stop collecting an account",
		Run:   handler.DeactivateAccountCmd,
	}
	deactivateAccountCmd.Flags().StringP("id", "", "", "Entity ID to deactivate")
	rootCmd.AddCommand(deactivateAccountCmd)

	return nil
}
