package usecases

import (
	"context"

	"litrevu/internal/domain/feed"
	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/domain/user"
	"litrevu/internal/shared/logger"
)

type GetHomeFeedQuery struct {
	ViewerID uint
}

// GetHomeFeedUseCase aggregates the posts of the viewer and everyone the
// viewer follows into one reverse-chronological feed.
type GetHomeFeedUseCase struct {
	followRepo user.FollowRepository
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetHomeFeedUseCase(
	followRepo user.FollowRepository,
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetHomeFeedUseCase {
	return &GetHomeFeedUseCase{
		followRepo: followRepo,
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetHomeFeedUseCase) Execute(ctx context.Context, query GetHomeFeedQuery) (*FeedResult, error) {
	followedIDs, err := uc.followRepo.ListFollowedIDs(ctx, query.ViewerID)
	if err != nil {
		uc.logger.Errorw("failed to resolve visible users", "error", err)
		return nil, err
	}

	// The viewer always sees their own posts.
	visible := append([]uint{query.ViewerID}, followedIDs...)

	tickets, err := uc.ticketRepo.ListByAuthorIDs(ctx, visible)
	if err != nil {
		uc.logger.Errorw("failed to list feed tickets", "error", err)
		return nil, err
	}

	reviews, err := uc.reviewRepo.ListByAuthorIDs(ctx, visible)
	if err != nil {
		uc.logger.Errorw("failed to list feed reviews", "error", err)
		return nil, err
	}

	posts, err := newFeedAssembler(uc.ticketRepo, uc.userRepo).
		assemble(ctx, feed.Merge(tickets, reviews), query.ViewerID)
	if err != nil {
		return nil, err
	}

	return &FeedResult{Posts: posts}, nil
}
