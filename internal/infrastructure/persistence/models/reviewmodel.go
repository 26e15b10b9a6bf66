package models

import "time"

// ReviewModel persists one review. The unique index on TicketID enforces at
// most one review per ticket at the storage level.
type ReviewModel struct {
	ID        uint      `gorm:"primarykey"`
	TicketID  uint      `gorm:"not null;uniqueIndex"`
	Rating    int       `gorm:"not null"`
	Headline  string    `gorm:"not null;size:128"`
	Body      string    `gorm:"type:text"`
	AuthorID  uint      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (ReviewModel) TableName() string {
	return "reviews"
}

type CommentModel struct {
	ID        uint      `gorm:"primarykey"`
	ReviewID  uint      `gorm:"not null;index"`
	AuthorID  uint      `gorm:"not null;index"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index"`
}

func (CommentModel) TableName() string {
	return "review_comments"
}
