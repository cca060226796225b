package request

import "github.com/Guyuepp/errorpool/domain"

type Article struct {
	Title      string `json:"title" binding:"required,max=100"`
	Content    string `json:"content" binding:"required"`
	SkillID    int    `json:"skill_id" binding:"required"`
	CategoryID int    `json:"category_id" binding:"required"`
}

// ToDomain: Request -> Domain, 作者由调用方填入
func (r *Article) ToDomain() domain.Article {
	return domain.Article{
		Title:    r.Title,
		Content:  r.Content,
		Skill:    domain.Skill(r.SkillID),
		Category: domain.Category(r.CategoryID),
	}
}

// ArticlePatch 只包含可修改的字段, 缺省字段保持不变
type ArticlePatch struct {
	Title      *string `json:"title" binding:"omitempty,max=100"`
	Content    *string `json:"content"`
	CategoryID *int    `json:"category_id"`
}

func (r *ArticlePatch) ToDomain() domain.ArticlePatch {
	return domain.ArticlePatch{
		Title:      r.Title,
		Content:    r.Content,
		CategoryID: r.CategoryID,
	}
}
