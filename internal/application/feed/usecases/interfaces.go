package usecases

import "context"

type GetHomeFeedExecutor interface {
	Execute(ctx context.Context, query GetHomeFeedQuery) (*FeedResult, error)
}

type GetOwnPostsExecutor interface {
	Execute(ctx context.Context, query GetOwnPostsQuery) (*FeedResult, error)
}
