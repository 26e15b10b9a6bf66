package usecases

import (
	"context"
	stderrors "errors"

	"litrevu/internal/domain/user"
	"litrevu/internal/shared/errors"
	"litrevu/internal/shared/logger"
)

type FollowUserCommand struct {
	ViewerID       uint
	TargetUsername string
}

type FollowUserResult struct {
	FollowedID       uint
	FollowedUsername string
	// AlreadyFollowing marks the idempotent no-op so the handler can flash
	// an informational message instead of an error.
	AlreadyFollowing bool
	// SelfFollow marks a rejected attempt to follow oneself; no edge is
	// created and the handler flashes a message.
	SelfFollow bool
}

type FollowUserUseCase struct {
	userRepo   user.Repository
	followRepo user.FollowRepository
	logger     logger.Interface
}

func NewFollowUserUseCase(
	userRepo user.Repository,
	followRepo user.FollowRepository,
	logger logger.Interface,
) *FollowUserUseCase {
	return &FollowUserUseCase{
		userRepo:   userRepo,
		followRepo: followRepo,
		logger:     logger,
	}
}

func (uc *FollowUserUseCase) Execute(ctx context.Context, cmd FollowUserCommand) (*FollowUserResult, error) {
	target, err := uc.userRepo.FindByUsername(ctx, cmd.TargetUsername)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("no user with that username")
		}
		uc.logger.Errorw("failed to look up target user", "error", err)
		return nil, err
	}

	edge, err := user.NewFollowEdge(cmd.ViewerID, target.ID())
	if err != nil {
		if stderrors.Is(err, user.ErrSelfFollow) {
			return &FollowUserResult{
				FollowedID:       target.ID(),
				FollowedUsername: target.Username().String(),
				SelfFollow:       true,
			}, nil
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.followRepo.Save(ctx, edge); err != nil {
		// A concurrent follow of the same pair trips the unique index; report
		// it the same way as the pre-existing edge.
		if errors.IsConflictError(err) {
			return &FollowUserResult{
				FollowedID:       target.ID(),
				FollowedUsername: target.Username().String(),
				AlreadyFollowing: true,
			}, nil
		}
		uc.logger.Errorw("failed to save follow edge", "error", err)
		return nil, err
	}

	uc.logger.Infow("user followed",
		"follower_id", cmd.ViewerID,
		"followed_id", target.ID())

	return &FollowUserResult{
		FollowedID:       target.ID(),
		FollowedUsername: target.Username().String(),
	}, nil
}
