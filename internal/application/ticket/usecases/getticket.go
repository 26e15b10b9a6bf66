package usecases

import (
	"context"
	"time"

	"litrevu/internal/domain/ticket"
	"litrevu/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	ViewerID uint
}

type TicketDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImagePath   string    `json:"image_path,omitempty"`
	CreatorID   uint      `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	HasReview   bool      `json:"has_review"`
	// IsOwner drives the edit and delete affordances for the viewer.
	IsOwner bool `json:"is_owner"`
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketDTO, error) {
	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	hasReview, err := uc.ticketRepo.HasReview(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to check ticket reviews", "error", err)
		return nil, err
	}

	return NewTicketDTO(t, hasReview, query.ViewerID), nil
}

// NewTicketDTO builds the ticket context shared by the detail and feed views.
func NewTicketDTO(t *ticket.Ticket, hasReview bool, viewerID uint) *TicketDTO {
	return &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		ImagePath:   t.ImagePath(),
		CreatorID:   t.CreatorID(),
		CreatedAt:   t.CreatedAt(),
		HasReview:   hasReview,
		IsOwner:     t.IsOwnedBy(viewerID),
	}
}
