package usecases

import (
	"context"

	"litrevu/internal/domain/feed"
	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/domain/user"
	"litrevu/internal/shared/logger"
)

type GetOwnPostsQuery struct {
	ViewerID uint
}

// GetOwnPostsUseCase is the feed restricted to the viewer's own tickets and
// reviews, backing the posts management page.
type GetOwnPostsUseCase struct {
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetOwnPostsUseCase(
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetOwnPostsUseCase {
	return &GetOwnPostsUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetOwnPostsUseCase) Execute(ctx context.Context, query GetOwnPostsQuery) (*FeedResult, error) {
	own := []uint{query.ViewerID}

	tickets, err := uc.ticketRepo.ListByAuthorIDs(ctx, own)
	if err != nil {
		uc.logger.Errorw("failed to list own tickets", "error", err)
		return nil, err
	}

	reviews, err := uc.reviewRepo.ListByAuthorIDs(ctx, own)
	if err != nil {
		uc.logger.Errorw("failed to list own reviews", "error", err)
		return nil, err
	}

	posts, err := newFeedAssembler(uc.ticketRepo, uc.userRepo).
		assemble(ctx, feed.Merge(tickets, reviews), query.ViewerID)
	if err != nil {
		return nil, err
	}

	return &FeedResult{Posts: posts}, nil
}
