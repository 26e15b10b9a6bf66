// Package ticket contains the ticket aggregate: a request for review authored
// by a user, optionally illustrated with an image.
package ticket

import (
	"fmt"
	"time"
)

const (
	MaxTitleLength       = 128
	MaxDescriptionLength = 2048
)

type Ticket struct {
	id          uint
	title       string
	description string
	imagePath   string
	creatorID   uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(title, description, imagePath string, creatorID uint) (*Ticket, error) {
	if err := validateFields(title, description); err != nil {
		return nil, err
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now().UTC()
	return &Ticket{
		title:       title,
		description: description,
		imagePath:   imagePath,
		creatorID:   creatorID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(id uint, title, description, imagePath string, creatorID uint, createdAt, updatedAt time.Time) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		imagePath:   imagePath,
		creatorID:   creatorID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) ImagePath() string {
	return t.imagePath
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// UpdateDetails replaces the editable fields. The creation timestamp and
// creator never change.
func (t *Ticket) UpdateDetails(title, description string) error {
	if err := validateFields(title, description); err != nil {
		return err
	}
	t.title = title
	t.description = description
	t.updatedAt = time.Now().UTC()
	return nil
}

// ReplaceImage swaps the stored image path. An empty path clears the image.
func (t *Ticket) ReplaceImage(imagePath string) {
	t.imagePath = imagePath
	t.updatedAt = time.Now().UTC()
}

// IsOwnedBy reports whether the given user created this ticket.
func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.creatorID == userID
}

func validateFields(title, description string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	return nil
}
