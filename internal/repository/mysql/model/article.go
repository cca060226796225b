package model

import (
	"time"

	"github.com/Guyuepp/errorpool/domain"
)

type Article struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(100);not null"`
	Content   string    `gorm:"type:longtext;not null"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_article_user_created,priority:1"`
	Skill     int       `gorm:"not null;index:idx_article_skill_category,priority:1;index:idx_article_skill_likes,priority:1"`
	Category  int       `gorm:"not null;index:idx_article_skill_category,priority:2"`
	Likes     int64     `gorm:"default:0;not null;index:idx_article_skill_likes,priority:2;index:idx_article_likes"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime;index:idx_article_user_created,priority:2"`
}

func (Article) TableName() string {
	return "article"
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Skill:     domain.Skill(m.Skill),
		Category:  domain.Category(m.Category),
		UpdatedAt: m.UpdatedAt,
		CreatedAt: m.CreatedAt,
		User: domain.User{
			ID: m.UserID,
		},
		Likes: m.Likes,
	}
}

func NewArticleFromDomain(a *domain.Article) *Article {
	return &Article{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		UserID:    a.User.ID,
		Skill:     int(a.Skill),
		Category:  int(a.Category),
		UpdatedAt: a.UpdatedAt,
		CreatedAt: a.CreatedAt,
		Likes:     a.Likes,
	}
}
