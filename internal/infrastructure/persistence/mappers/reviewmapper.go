package mappers

import (
	"fmt"

	"litrevu/internal/domain/review"
	"litrevu/internal/infrastructure/persistence/models"
)

// ReviewMapper handles the conversion between Review domain entities and persistence models.
type ReviewMapper interface {
	// ToModel converts a review domain entity to a persistence model.
	ToModel(r *review.Review) *models.ReviewModel

	// ToDomain converts a review persistence model to a domain entity.
	ToDomain(model *models.ReviewModel) (*review.Review, error)

	// CommentToModel converts a comment domain entity to a persistence model.
	CommentToModel(c *review.Comment) *models.CommentModel

	// CommentToDomain converts a comment persistence model to a domain entity.
	CommentToDomain(model *models.CommentModel) (*review.Comment, error)
}

// ReviewMapperImpl is the concrete implementation of ReviewMapper.
type ReviewMapperImpl struct{}

// NewReviewMapper creates a new ReviewMapper.
func NewReviewMapper() ReviewMapper {
	return &ReviewMapperImpl{}
}

func (m *ReviewMapperImpl) ToModel(r *review.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:        r.ID(),
		TicketID:  r.TicketID(),
		Rating:    r.Rating(),
		Headline:  r.Headline(),
		Body:      r.Body(),
		AuthorID:  r.AuthorID(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func (m *ReviewMapperImpl) ToDomain(model *models.ReviewModel) (*review.Review, error) {
	if model == nil {
		return nil, fmt.Errorf("cannot convert nil model to review")
	}

	return review.ReconstructReview(
		model.ID,
		model.TicketID,
		model.Rating,
		model.Headline,
		model.Body,
		model.AuthorID,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *ReviewMapperImpl) CommentToModel(c *review.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		ReviewID:  c.ReviewID(),
		AuthorID:  c.AuthorID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m *ReviewMapperImpl) CommentToDomain(model *models.CommentModel) (*review.Comment, error) {
	if model == nil {
		return nil, fmt.Errorf("cannot convert nil model to comment")
	}

	return review.ReconstructComment(
		model.ID,
		model.ReviewID,
		model.AuthorID,
		model.Content,
		model.CreatedAt,
	)
}
