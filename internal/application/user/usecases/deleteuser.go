package usecases

import (
	"context"

	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/domain/user"
	"litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID uint
}

// DeleteUserUseCase removes an account and everything it owns. The cascade
// runs inside one transaction, dependents first: comments, reviews (both
// authored and those on the user's tickets), tickets, follow edges, user row.
type DeleteUserUseCase struct {
	userRepo    user.Repository
	followRepo  user.FollowRepository
	ticketRepo  ticket.Repository
	reviewRepo  review.Repository
	commentRepo review.CommentRepository
	txRunner    TransactionRunner
	logger      logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	followRepo user.FollowRepository,
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	commentRepo review.CommentRepository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:    userRepo,
		followRepo:  followRepo,
		ticketRepo:  ticketRepo,
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
		txRunner:    txRunner,
		logger:      logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	uc.logger.Infow("executing delete user use case", "user_id", cmd.UserID)

	if _, err := uc.userRepo.FindByID(ctx, cmd.UserID); err != nil {
		return err
	}

	tickets, err := uc.ticketRepo.ListByAuthorIDs(ctx, []uint{cmd.UserID})
	if err != nil {
		return err
	}

	txErr := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Reviews sitting on the user's tickets go away with the tickets,
		// along with their comment threads.
		for _, t := range tickets {
			rv, err := uc.reviewRepo.FindByTicketID(txCtx, t.ID())
			if err == nil {
				if err := uc.commentRepo.DeleteByReviewID(txCtx, rv.ID()); err != nil {
					return err
				}
			} else if !errors.IsNotFoundError(err) {
				return err
			}
			if err := uc.reviewRepo.DeleteByTicketID(txCtx, t.ID()); err != nil {
				return err
			}
		}

		authored, err := uc.reviewRepo.ListByAuthorIDs(txCtx, []uint{cmd.UserID})
		if err != nil {
			return err
		}
		for _, rv := range authored {
			if err := uc.commentRepo.DeleteByReviewID(txCtx, rv.ID()); err != nil {
				return err
			}
		}

		if err := uc.reviewRepo.DeleteByAuthorID(txCtx, cmd.UserID); err != nil {
			return err
		}
		if err := uc.commentRepo.DeleteByAuthorID(txCtx, cmd.UserID); err != nil {
			return err
		}
		if err := uc.ticketRepo.DeleteByCreatorID(txCtx, cmd.UserID); err != nil {
			return err
		}
		if err := uc.followRepo.DeleteAllForUser(txCtx, cmd.UserID); err != nil {
			return err
		}
		return uc.userRepo.Delete(txCtx, cmd.UserID)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to delete user", "error", txErr)
		return txErr
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID)
	return nil
}
