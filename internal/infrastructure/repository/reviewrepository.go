package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"litrevu/internal/domain/review"
	"litrevu/internal/infrastructure/persistence/mappers"
	"litrevu/internal/infrastructure/persistence/models"
	db "litrevu/internal/shared/db"
	"litrevu/internal/shared/errors"
)

type ReviewRepository struct {
	db     *gorm.DB
	mapper mappers.ReviewMapper
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		db:     db,
		mapper: mappers.NewReviewMapper(),
	}
}

func (r *ReviewRepository) Save(ctx context.Context, rv *review.Review) error {
	model := r.mapper.ToModel(rv)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("ticket already has a review")
		}
		return fmt.Errorf("failed to save review: %w", err)
	}

	if err := rv.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *review.Review) error {
	model := r.mapper.ToModel(rv)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ReviewModel{}).
		Where("id = ?", model.ID).
		Select("Rating", "Headline", "Body").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update review: %w", result.Error)
	}

	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uint) (*review.Review, error) {
	var model models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("review not found")
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ReviewRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ReviewModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("review not found")
	}

	return nil
}

func (r *ReviewRepository) ExistsForTicket(ctx context.Context, ticketID uint) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ReviewModel{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ticket review: %w", err)
	}

	return count > 0, nil
}

func (r *ReviewRepository) FindByTicketID(ctx context.Context, ticketID uint) (*review.Review, error) {
	var model models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", ticketID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("review not found")
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ReviewRepository) ListByAuthorIDs(ctx context.Context, authorIDs []uint) ([]*review.Review, error) {
	if len(authorIDs) == 0 {
		return []*review.Review{}, nil
	}

	var reviewModels []models.ReviewModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("author_id IN ?", authorIDs).
		Order("created_at DESC, id DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews := make([]*review.Review, 0, len(reviewModels))
	for i := range reviewModels {
		rv, err := r.mapper.ToDomain(&reviewModels[i])
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}

	return reviews, nil
}

func (r *ReviewRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Delete(&models.ReviewModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete reviews: %w", err)
	}

	return nil
}

func (r *ReviewRepository) DeleteByAuthorID(ctx context.Context, authorID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("author_id = ?", authorID).
		Delete(&models.ReviewModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete reviews: %w", err)
	}

	return nil
}
