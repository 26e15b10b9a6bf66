package usecases

import (
	"context"

	"litrevu/internal/domain/review"
	"litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type UpdateReviewCommand struct {
	ReviewID uint
	EditorID uint
	Rating   int
	Headline string
	Body     string
}

type UpdateReviewResult struct {
	ReviewID uint
	TicketID uint
}

type UpdateReviewUseCase struct {
	reviewRepo review.Repository
	logger     logger.Interface
}

func NewUpdateReviewUseCase(
	reviewRepo review.Repository,
	logger logger.Interface,
) *UpdateReviewUseCase {
	return &UpdateReviewUseCase{
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (uc *UpdateReviewUseCase) Execute(ctx context.Context, cmd UpdateReviewCommand) (*UpdateReviewResult, error) {
	rv, err := uc.reviewRepo.FindByID(ctx, cmd.ReviewID)
	if err != nil {
		return nil, err
	}

	if !rv.IsOwnedBy(cmd.EditorID) {
		return nil, errors.NewForbiddenError("only the review author can edit it")
	}

	if err := rv.UpdateDetails(cmd.Rating, cmd.Headline, cmd.Body); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Update(ctx, rv); err != nil {
		uc.logger.Errorw("failed to update review", "error", err)
		return nil, err
	}

	uc.logger.Infow("review updated", "review_id", rv.ID())

	return &UpdateReviewResult{
		ReviewID: rv.ID(),
		TicketID: rv.TicketID(),
	}, nil
}
