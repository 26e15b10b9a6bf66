package usecases

import (
	"context"
	"time"

	"litrevu/internal/domain/ticket"
	"litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	ImagePath   string
	CreatorID   uint
}

type CreateTicketResult struct {
	TicketID  uint
	Title     string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "creator_id", cmd.CreatorID)

	if cmd.CreatorID == 0 {
		return nil, errors.NewValidationError("creator ID is required")
	}

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.ImagePath, cmd.CreatorID)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID())

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Title:     newTicket.Title(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}
