package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"litrevu/internal/domain/review"
	"litrevu/internal/infrastructure/persistence/mappers"
	"litrevu/internal/infrastructure/persistence/models"
	db "litrevu/internal/shared/db"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.ReviewMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewReviewMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *review.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *CommentRepository) ListByReviewID(ctx context.Context, reviewID uint) ([]*review.Comment, error) {
	var commentModels []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("review_id = ?", reviewID).
		Order("created_at ASC, id ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*review.Comment, 0, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, nil
}

func (r *CommentRepository) DeleteByReviewID(ctx context.Context, reviewID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("review_id = ?", reviewID).
		Delete(&models.CommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}

	return nil
}

func (r *CommentRepository) DeleteByAuthorID(ctx context.Context, authorID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("author_id = ?", authorID).
		Delete(&models.CommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}

	return nil
}
