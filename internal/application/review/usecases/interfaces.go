package usecases

import "context"

// TransactionRunner executes a function inside one database transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// BodyRenderer turns a review body into sanitized HTML for the detail view.
type BodyRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type CreateReviewExecutor interface {
	Execute(ctx context.Context, cmd CreateReviewCommand) (*CreateReviewResult, error)
}

type CreateTicketWithReviewExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketWithReviewCommand) (*CreateTicketWithReviewResult, error)
}

type GetReviewDetailExecutor interface {
	Execute(ctx context.Context, query GetReviewDetailQuery) (*ReviewDetailDTO, error)
}

type UpdateReviewExecutor interface {
	Execute(ctx context.Context, cmd UpdateReviewCommand) (*UpdateReviewResult, error)
}

type DeleteReviewExecutor interface {
	Execute(ctx context.Context, cmd DeleteReviewCommand) error
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}
