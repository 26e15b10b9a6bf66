package models

import "time"

type TicketModel struct {
	ID          uint      `gorm:"primarykey"`
	Title       string    `gorm:"not null;size:128"`
	Description string    `gorm:"type:text"`
	ImagePath   string    `gorm:"size:500"`
	CreatorID   uint      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
