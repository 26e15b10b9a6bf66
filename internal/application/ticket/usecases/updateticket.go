package usecases

import (
	"context"

	"litrevu/internal/domain/ticket"
	"litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID    uint
	EditorID    uint
	Title       string
	Description string
	// NewImagePath replaces the stored image when non-empty.
	NewImagePath string
}

type UpdateTicketResult struct {
	TicketID uint
	Title    string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	images     ImageRemover
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	images ImageRemover,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		images:     images,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.IsOwnedBy(cmd.EditorID) {
		return nil, errors.NewForbiddenError("only the ticket creator can edit it")
	}

	if err := t.UpdateDetails(cmd.Title, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	oldImage := t.ImagePath()
	if cmd.NewImagePath != "" {
		t.ReplaceImage(cmd.NewImagePath)
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err)
		return nil, err
	}

	if cmd.NewImagePath != "" && oldImage != "" && oldImage != cmd.NewImagePath {
		if err := uc.images.Remove(oldImage); err != nil {
			uc.logger.Warnw("failed to remove replaced image", "error", err)
		}
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID())

	return &UpdateTicketResult{
		TicketID: t.ID(),
		Title:    t.Title(),
	}, nil
}
