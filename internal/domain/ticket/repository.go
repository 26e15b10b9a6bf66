package ticket

import "context"

// Repository persists ticket aggregates.
type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	Delete(ctx context.Context, id uint) error
	// ListByAuthorIDs returns all tickets created by any of the given users,
	// newest first. Used by the feed aggregator.
	ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*Ticket, error)
	// HasReview reports whether at least one review references the ticket.
	HasReview(ctx context.Context, ticketID uint) (bool, error)
	DeleteByCreatorID(ctx context.Context, creatorID uint) error
}
