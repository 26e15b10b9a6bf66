package models

import "time"

// UserModel is the database persistence model for users.
// This is the anti-corruption layer between domain and database.
type UserModel struct {
	ID           uint    `gorm:"primarykey"`
	Username     string  `gorm:"uniqueIndex;not null;size:64"`
	Email        *string `gorm:"size:255"`
	PasswordHash string  `gorm:"not null;size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "users"
}
