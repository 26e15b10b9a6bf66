package usecases

import (
	"context"

	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type CreateReviewCommand struct {
	TicketID uint
	Rating   int
	Headline string
	Body     string
	AuthorID uint
}

type CreateReviewResult struct {
	ReviewID uint
	TicketID uint
	// AlreadyReviewed marks the silent no-op taken when the ticket has a
	// review by the time the submission lands.
	AlreadyReviewed bool
}

type CreateReviewUseCase struct {
	reviewRepo review.Repository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCreateReviewUseCase(
	reviewRepo review.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		reviewRepo: reviewRepo,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateReviewUseCase) Execute(ctx context.Context, cmd CreateReviewCommand) (*CreateReviewResult, error) {
	uc.logger.Infow("executing create review use case", "ticket_id", cmd.TicketID, "author_id", cmd.AuthorID)

	if _, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID); err != nil {
		return nil, err
	}

	exists, err := uc.reviewRepo.ExistsForTicket(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to check existing review", "error", err)
		return nil, err
	}
	if exists {
		return &CreateReviewResult{TicketID: cmd.TicketID, AlreadyReviewed: true}, nil
	}

	newReview, err := review.NewReview(cmd.TicketID, cmd.Rating, cmd.Headline, cmd.Body, cmd.AuthorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.reviewRepo.Save(ctx, newReview); err != nil {
		// The unique index catches a racing submission; surface it as the
		// same silent no-op as the pre-check.
		if errors.IsConflictError(err) {
			return &CreateReviewResult{TicketID: cmd.TicketID, AlreadyReviewed: true}, nil
		}
		uc.logger.Errorw("failed to save review", "error", err)
		return nil, err
	}

	uc.logger.Infow("review created", "review_id", newReview.ID())

	return &CreateReviewResult{
		ReviewID: newReview.ID(),
		TicketID: cmd.TicketID,
	}, nil
}
