package usecases

import (
	"context"

	"litrevu/internal/domain/review"
	"litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type DeleteReviewCommand struct {
	ReviewID uint
	EditorID uint
}

// DeleteReviewUseCase removes a review and its comment thread in one
// transaction. The subject ticket survives and becomes reviewable again.
type DeleteReviewUseCase struct {
	reviewRepo  review.Repository
	commentRepo review.CommentRepository
	txRunner    TransactionRunner
	logger      logger.Interface
}

func NewDeleteReviewUseCase(
	reviewRepo review.Repository,
	commentRepo review.CommentRepository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
		txRunner:    txRunner,
		logger:      logger,
	}
}

func (uc *DeleteReviewUseCase) Execute(ctx context.Context, cmd DeleteReviewCommand) error {
	rv, err := uc.reviewRepo.FindByID(ctx, cmd.ReviewID)
	if err != nil {
		return err
	}

	if !rv.IsOwnedBy(cmd.EditorID) {
		return errors.NewForbiddenError("only the review author can delete it")
	}

	txErr := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.DeleteByReviewID(txCtx, cmd.ReviewID); err != nil {
			return err
		}
		return uc.reviewRepo.Delete(txCtx, cmd.ReviewID)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to delete review", "error", txErr)
		return txErr
	}

	uc.logger.Infow("review deleted", "review_id", cmd.ReviewID)
	return nil
}
