package usecases

import (
	"context"

	"litrevu/internal/domain/user"
	"litrevu/internal/shared/logger"
)

type ListFollowingsQuery struct {
	ViewerID uint
}

type FollowedUserDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type ListFollowingsResult struct {
	Followings []FollowedUserDTO `json:"followings"`
	Followers  []FollowedUserDTO `json:"followers"`
}

type ListFollowingsUseCase struct {
	followRepo user.FollowRepository
	logger     logger.Interface
}

func NewListFollowingsUseCase(
	followRepo user.FollowRepository,
	logger logger.Interface,
) *ListFollowingsUseCase {
	return &ListFollowingsUseCase{
		followRepo: followRepo,
		logger:     logger,
	}
}

func (uc *ListFollowingsUseCase) Execute(ctx context.Context, query ListFollowingsQuery) (*ListFollowingsResult, error) {
	followings, err := uc.followRepo.ListFollowings(ctx, query.ViewerID)
	if err != nil {
		uc.logger.Errorw("failed to list followings", "error", err)
		return nil, err
	}

	followers, err := uc.followRepo.ListFollowers(ctx, query.ViewerID)
	if err != nil {
		uc.logger.Errorw("failed to list followers", "error", err)
		return nil, err
	}

	return &ListFollowingsResult{
		Followings: toFollowedUserDTOs(followings),
		Followers:  toFollowedUserDTOs(followers),
	}, nil
}

func toFollowedUserDTOs(users []*user.User) []FollowedUserDTO {
	dtos := make([]FollowedUserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, FollowedUserDTO{
			ID:       u.ID(),
			Username: u.Username().String(),
		})
	}
	return dtos
}
