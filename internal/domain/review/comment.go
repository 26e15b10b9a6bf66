package review

import (
	"fmt"
	"time"
)

const MaxCommentLength = 2048

// Comment is a reply on a review. Content may be empty; the original product
// allows bare "seen" comments.
type Comment struct {
	id        uint
	reviewID  uint
	authorID  uint
	content   string
	createdAt time.Time
}

func NewComment(reviewID, authorID uint, content string) (*Comment, error) {
	if reviewID == 0 {
		return nil, fmt.Errorf("review ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(content) > MaxCommentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", MaxCommentLength)
	}

	return &Comment{
		reviewID:  reviewID,
		authorID:  authorID,
		content:   content,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructComment(id, reviewID, authorID uint, content string, createdAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if reviewID == 0 {
		return nil, fmt.Errorf("review ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		id:        id,
		reviewID:  reviewID,
		authorID:  authorID,
		content:   content,
		createdAt: createdAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) ReviewID() uint {
	return c.reviewID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
