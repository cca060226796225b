package model

import (
	"time"

	"github.com/Guyuepp/errorpool/domain"
)

// UserLike 的 (article_id, user_id) 唯一索引是"是否已点赞"的唯一事实来源
type UserLike struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ArticleID int64     `gorm:"column:article_id;not null;uniqueIndex:uk_user_likes_article_user,priority:1"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_likes_article_user,priority:2"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (UserLike) TableName() string {
	return "user_likes"
}

func (m *UserLike) ToDomain() domain.UserLike {
	return domain.UserLike{
		ID:        m.ID,
		ArticleID: m.ArticleID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

func NewUserLikeFromDomain(ul *domain.UserLike) *UserLike {
	return &UserLike{
		ID:        ul.ID,
		ArticleID: ul.ArticleID,
		UserID:    ul.UserID,
		CreatedAt: ul.CreatedAt,
	}
}
