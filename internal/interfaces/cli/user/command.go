package user

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"litrevu/internal/application/user/usecases"
	"litrevu/internal/infrastructure/config"
	"litrevu/internal/infrastructure/database"
	"litrevu/internal/infrastructure/repository"
	"litrevu/internal/shared/db"
	"litrevu/internal/shared/logger"
)

var (
	env      string
	username string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Administrative user management",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newDeleteCommand())

	return cmd
}

func newDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an account and everything it owns",
		Long:  `Delete a user account together with its tickets, reviews, comments and follow edges.`,
		RunE:  runDelete,
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username of the account to delete (required)")
	cmd.MarkFlagRequired("username")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env == "development"); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	gormDB := database.Get()
	userRepo := repository.NewUserRepository(gormDB)
	followRepo := repository.NewFollowRepository(gormDB)
	ticketRepo := repository.NewTicketRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	txManager := db.NewTransactionManager(gormDB)

	ctx := context.Background()

	target, err := userRepo.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to look up %q: %w", username, err)
	}

	deleteUC := usecases.NewDeleteUserUseCase(userRepo, followRepo, ticketRepo, reviewRepo, commentRepo, txManager, log)
	if err := deleteUC.Execute(ctx, usecases.DeleteUserCommand{UserID: target.ID()}); err != nil {
		return fmt.Errorf("failed to delete %q: %w", username, err)
	}

	log.Infow("account deleted", "username", username)
	return nil
}
