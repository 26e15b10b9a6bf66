package review

import "context"

// Repository persists review aggregates.
type Repository interface {
	Save(ctx context.Context, r *Review) error
	Update(ctx context.Context, r *Review) error
	FindByID(ctx context.Context, id uint) (*Review, error)
	Delete(ctx context.Context, id uint) error
	// ExistsForTicket backs the at-most-one-review-per-ticket pre-check.
	ExistsForTicket(ctx context.Context, ticketID uint) (bool, error)
	FindByTicketID(ctx context.Context, ticketID uint) (*Review, error)
	// ListByAuthorIDs returns all reviews authored by any of the given users,
	// newest first. Used by the feed aggregator.
	ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*Review, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
	DeleteByAuthorID(ctx context.Context, authorID uint) error
}

// CommentRepository persists review comments.
type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	ListByReviewID(ctx context.Context, reviewID uint) ([]*Comment, error)
	DeleteByReviewID(ctx context.Context, reviewID uint) error
	DeleteByAuthorID(ctx context.Context, authorID uint) error
}
