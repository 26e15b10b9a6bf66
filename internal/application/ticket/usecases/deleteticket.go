package usecases

import (
	"context"

	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
	EditorID uint
}

// DeleteTicketUseCase removes a ticket together with its review and that
// review's comments in one transaction.
type DeleteTicketUseCase struct {
	ticketRepo  ticket.Repository
	reviewRepo  review.Repository
	commentRepo review.CommentRepository
	images      ImageRemover
	txRunner    TransactionRunner
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	commentRepo review.CommentRepository,
	images ImageRemover,
	txRunner TransactionRunner,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:  ticketRepo,
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
		images:      images,
		txRunner:    txRunner,
		logger:      logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if !t.IsOwnedBy(cmd.EditorID) {
		return errors.NewForbiddenError("only the ticket creator can delete it")
	}

	txErr := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		rv, err := uc.reviewRepo.FindByTicketID(txCtx, cmd.TicketID)
		if err == nil {
			if err := uc.commentRepo.DeleteByReviewID(txCtx, rv.ID()); err != nil {
				return err
			}
		} else if !errors.IsNotFoundError(err) {
			return err
		}

		if err := uc.reviewRepo.DeleteByTicketID(txCtx, cmd.TicketID); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to delete ticket", "error", txErr)
		return txErr
	}

	if t.ImagePath() != "" {
		if err := uc.images.Remove(t.ImagePath()); err != nil {
			uc.logger.Warnw("failed to remove ticket image", "error", err)
		}
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}
