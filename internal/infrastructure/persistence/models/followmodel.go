package models

import "time"

// FollowModel persists one directed edge of the follow graph. The composite
// unique index enforces at most one edge per (follower, followed) pair.
type FollowModel struct {
	ID         uint `gorm:"primarykey"`
	FollowerID uint `gorm:"not null;uniqueIndex:idx_follows_unique;index"`
	FollowedID uint `gorm:"not null;uniqueIndex:idx_follows_unique;index"`
	CreatedAt  time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (FollowModel) TableName() string {
	return "user_follows"
}
