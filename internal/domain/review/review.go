// Package review contains the review aggregate (a rated response to exactly
// one ticket) and its comment thread.
package review

import (
	"fmt"
	"strings"
	"time"
)

const (
	MinRating         = 0
	MaxRating         = 5
	MaxHeadlineLength = 128
	MaxBodyLength     = 8192
)

type Review struct {
	id        uint
	ticketID  uint
	rating    int
	headline  string
	body      string
	authorID  uint
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(ticketID uint, rating int, headline, body string, authorID uint) (*Review, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if err := validateFields(rating, headline, body); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Review{
		ticketID:  ticketID,
		rating:    rating,
		headline:  headline,
		body:      body,
		authorID:  authorID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReview(id, ticketID uint, rating int, headline, body string, authorID uint, createdAt, updatedAt time.Time) (*Review, error) {
	if id == 0 {
		return nil, fmt.Errorf("review ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Review{
		id:        id,
		ticketID:  ticketID,
		rating:    rating,
		headline:  headline,
		body:      body,
		authorID:  authorID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Review) ID() uint {
	return r.id
}

func (r *Review) TicketID() uint {
	return r.ticketID
}

func (r *Review) Rating() int {
	return r.rating
}

func (r *Review) Headline() string {
	return r.headline
}

func (r *Review) Body() string {
	return r.body
}

func (r *Review) AuthorID() uint {
	return r.authorID
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) UpdatedAt() time.Time {
	return r.updatedAt
}

// StarsRating renders the rating as star glyphs, e.g. "★★★★" for 4.
func (r *Review) StarsRating() string {
	return strings.Repeat("★", r.rating)
}

func (r *Review) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("review ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("review ID cannot be zero")
	}
	r.id = id
	return nil
}

// UpdateDetails replaces the editable fields. Subject ticket, author and
// creation timestamp never change.
func (r *Review) UpdateDetails(rating int, headline, body string) error {
	if err := validateFields(rating, headline, body); err != nil {
		return err
	}
	r.rating = rating
	r.headline = headline
	r.body = body
	r.updatedAt = time.Now().UTC()
	return nil
}

// IsOwnedBy reports whether the given user authored this review.
func (r *Review) IsOwnedBy(userID uint) bool {
	return r.authorID == userID
}

func validateFields(rating int, headline, body string) error {
	if rating < MinRating || rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d", MinRating, MaxRating)
	}
	if len(headline) == 0 {
		return fmt.Errorf("headline is required")
	}
	if len(headline) > MaxHeadlineLength {
		return fmt.Errorf("headline exceeds maximum length of %d characters", MaxHeadlineLength)
	}
	if len(body) > MaxBodyLength {
		return fmt.Errorf("body exceeds maximum length of %d characters", MaxBodyLength)
	}
	return nil
}
