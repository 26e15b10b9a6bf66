package mappers

import (
	"fmt"

	"litrevu/internal/domain/user"
	vo "litrevu/internal/domain/user/valueobjects"
	"litrevu/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	// ToModel converts a user domain entity to a persistence model.
	ToModel(u *user.User) *models.UserModel

	// ToDomain converts a user persistence model to a domain entity.
	ToDomain(model *models.UserModel) (*user.User, error)

	// FollowToModel converts a follow edge to a persistence model.
	FollowToModel(edge *user.FollowEdge) *models.FollowModel

	// FollowToDomain converts a follow persistence model to a domain entity.
	FollowToDomain(model *models.FollowModel) (*user.FollowEdge, error)
}

// UserMapperImpl is the concrete implementation of UserMapper.
type UserMapperImpl struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	model := &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username().String(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}

	if u.Email() != "" {
		email := u.Email()
		model.Email = &email
	}

	return model
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, fmt.Errorf("cannot convert nil model to user")
	}

	username, err := vo.NewUsername(model.Username)
	if err != nil {
		return nil, fmt.Errorf("invalid username in database: %w", err)
	}

	email := ""
	if model.Email != nil {
		email = *model.Email
	}

	return user.ReconstructUser(
		model.ID,
		username,
		model.PasswordHash,
		email,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *UserMapperImpl) FollowToModel(edge *user.FollowEdge) *models.FollowModel {
	return &models.FollowModel{
		ID:         edge.ID(),
		FollowerID: edge.FollowerID(),
		FollowedID: edge.FollowedID(),
		CreatedAt:  edge.CreatedAt(),
	}
}

func (m *UserMapperImpl) FollowToDomain(model *models.FollowModel) (*user.FollowEdge, error) {
	if model == nil {
		return nil, fmt.Errorf("cannot convert nil model to follow edge")
	}

	return user.ReconstructFollowEdge(
		model.ID,
		model.FollowerID,
		model.FollowedID,
		model.CreatedAt,
	)
}
