package usecases

import (
	"context"

	"litrevu/internal/domain/user"
	"litrevu/internal/shared/logger"
)

type UnfollowUserCommand struct {
	ViewerID uint
	TargetID uint
}

type UnfollowUserResult struct {
	TargetID uint
	// WasFollowing is false for the idempotent "was not following" no-op.
	WasFollowing bool
	// SelfUnfollow marks a rejected attempt to unfollow oneself.
	SelfUnfollow bool
}

type UnfollowUserUseCase struct {
	followRepo user.FollowRepository
	logger     logger.Interface
}

func NewUnfollowUserUseCase(
	followRepo user.FollowRepository,
	logger logger.Interface,
) *UnfollowUserUseCase {
	return &UnfollowUserUseCase{
		followRepo: followRepo,
		logger:     logger,
	}
}

func (uc *UnfollowUserUseCase) Execute(ctx context.Context, cmd UnfollowUserCommand) (*UnfollowUserResult, error) {
	if cmd.ViewerID == cmd.TargetID {
		return &UnfollowUserResult{
			TargetID:     cmd.TargetID,
			SelfUnfollow: true,
		}, nil
	}

	existed, err := uc.followRepo.Delete(ctx, cmd.ViewerID, cmd.TargetID)
	if err != nil {
		uc.logger.Errorw("failed to delete follow edge", "error", err)
		return nil, err
	}

	if existed {
		uc.logger.Infow("user unfollowed",
			"follower_id", cmd.ViewerID,
			"followed_id", cmd.TargetID)
	}

	return &UnfollowUserResult{
		TargetID:     cmd.TargetID,
		WasFollowing: existed,
	}, nil
}
