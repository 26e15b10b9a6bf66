package usecases

import (
	"context"
	"time"

	"litrevu/internal/domain/review"
	"litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type AddCommentCommand struct {
	ReviewID uint
	AuthorID uint
	Content  string
}

type AddCommentResult struct {
	CommentID uint
	ReviewID  uint
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	reviewRepo  review.Repository
	commentRepo review.CommentRepository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	reviewRepo review.Repository,
	commentRepo review.CommentRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		reviewRepo:  reviewRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	if _, err := uc.reviewRepo.FindByID(ctx, cmd.ReviewID); err != nil {
		return nil, err
	}

	comment, err := review.NewComment(cmd.ReviewID, cmd.AuthorID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "comment_id", comment.ID(), "review_id", cmd.ReviewID)

	return &AddCommentResult{
		CommentID: comment.ID(),
		ReviewID:  cmd.ReviewID,
		CreatedAt: comment.CreatedAt(),
	}, nil
}
