package migration

import (
	"litrevu/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.FollowModel{},
		&models.TicketModel{},
		&models.ReviewModel{},
		&models.CommentModel{},
	}
}
