package usecases

import (
	"context"

	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type CreateTicketWithReviewCommand struct {
	Title       string
	Description string
	ImagePath   string
	Rating      int
	Headline    string
	Body        string
	AuthorID    uint
}

type CreateTicketWithReviewResult struct {
	TicketID uint
	ReviewID uint
}

// CreateTicketWithReviewUseCase persists a ticket and its review as one unit,
// for the "review a work nobody asked about yet" flow.
type CreateTicketWithReviewUseCase struct {
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	txRunner   TransactionRunner
	logger     logger.Interface
}

func NewCreateTicketWithReviewUseCase(
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *CreateTicketWithReviewUseCase {
	return &CreateTicketWithReviewUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		txRunner:   txRunner,
		logger:     logger,
	}
}

func (uc *CreateTicketWithReviewUseCase) Execute(ctx context.Context, cmd CreateTicketWithReviewCommand) (*CreateTicketWithReviewResult, error) {
	uc.logger.Infow("executing create ticket with review use case", "author_id", cmd.AuthorID)

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.ImagePath, cmd.AuthorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// Validate the review fields before opening the transaction. The real
	// ticket ID is not known yet, so build against a placeholder.
	if _, err := review.NewReview(1, cmd.Rating, cmd.Headline, cmd.Body, cmd.AuthorID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var result CreateTicketWithReviewResult
	txErr := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}

		newReview, err := review.NewReview(newTicket.ID(), cmd.Rating, cmd.Headline, cmd.Body, cmd.AuthorID)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.reviewRepo.Save(txCtx, newReview); err != nil {
			return err
		}

		result.TicketID = newTicket.ID()
		result.ReviewID = newReview.ID()
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to create ticket with review", "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("ticket and review created",
		"ticket_id", result.TicketID,
		"review_id", result.ReviewID)

	return &result, nil
}
