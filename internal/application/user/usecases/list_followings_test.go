package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litrevu/internal/domain/user"
)

func TestListFollowingsUseCase_Execute(t *testing.T) {
	mockFollows := &mockFollowRepository{
		ListFollowingsFunc: func(ctx context.Context, followerID uint) ([]*user.User, error) {
			return []*user.User{
				reconstructTestUser(t, 2, "bob"),
				reconstructTestUser(t, 4, "carol"),
			}, nil
		},
		ListFollowersFunc: func(ctx context.Context, followedID uint) ([]*user.User, error) {
			return []*user.User{
				reconstructTestUser(t, 2, "bob"),
			}, nil
		},
	}

	useCase := NewListFollowingsUseCase(mockFollows, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListFollowingsQuery{ViewerID: 1})

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Followings, 2)
	assert.Equal(t, "bob", result.Followings[0].Username)
	assert.Equal(t, "carol", result.Followings[1].Username)
	require.Len(t, result.Followers, 1)
	assert.Equal(t, uint(2), result.Followers[0].ID)
}

func TestListFollowingsUseCase_Execute_Empty(t *testing.T) {
	useCase := NewListFollowingsUseCase(&mockFollowRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListFollowingsQuery{ViewerID: 1})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Followings)
	assert.Empty(t, result.Followers)
}
