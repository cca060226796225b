package mysql

import (
	"gorm.io/gorm"

	"github.com/Guyuepp/errorpool/internal/repository/mysql/model"
)

// AutoMigrate creates or updates the article and user_likes tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Article{}, &model.UserLike{})
}
