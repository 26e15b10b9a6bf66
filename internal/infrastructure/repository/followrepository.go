package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"litrevu/internal/domain/user"
	"litrevu/internal/infrastructure/persistence/mappers"
	"litrevu/internal/infrastructure/persistence/models"
	db "litrevu/internal/shared/db"
	"litrevu/internal/shared/errors"
)

type FollowRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewFollowRepository(db *gorm.DB) *FollowRepository {
	return &FollowRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *FollowRepository) Save(ctx context.Context, edge *user.FollowEdge) error {
	model := r.mapper.FollowToModel(edge)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("already following this user")
		}
		return fmt.Errorf("failed to save follow edge: %w", err)
	}

	if err := edge.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.FollowModel{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check follow edge: %w", err)
	}

	return count > 0, nil
}

func (r *FollowRepository) Delete(ctx context.Context, followerID, followedID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.FollowModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete follow edge: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *FollowRepository) ListFollowedIDs(ctx context.Context, followerID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.FollowModel{}).
		Where("follower_id = ?", followerID).
		Pluck("followed_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list followed ids: %w", err)
	}

	return ids, nil
}

func (r *FollowRepository) ListFollowings(ctx context.Context, followerID uint) ([]*user.User, error) {
	return r.listUsersByJoin(ctx, "user_follows.followed_id = users.id", "user_follows.follower_id = ?", followerID)
}

func (r *FollowRepository) ListFollowers(ctx context.Context, followedID uint) ([]*user.User, error) {
	return r.listUsersByJoin(ctx, "user_follows.follower_id = users.id", "user_follows.followed_id = ?", followedID)
}

func (r *FollowRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("follower_id = ? OR followed_id = ?", userID, userID).
		Delete(&models.FollowModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete follow edges: %w", err)
	}

	return nil
}

func (r *FollowRepository) listUsersByJoin(ctx context.Context, joinCond, whereCond string, id uint) ([]*user.User, error) {
	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserModel{}).
		Joins("JOIN user_follows ON "+joinCond).
		Where(whereCond, id).
		Order("users.username ASC").
		Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(userModels))
	for i := range userModels {
		u, err := r.mapper.ToDomain(&userModels[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}
