package response

import (
	"github.com/Guyuepp/errorpool/domain"
)

type Article struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   int64  `json:"author_id"`
	UserName   string `json:"user_name,omitempty"`
	SkillID    int    `json:"skill_id"`
	Skill      string `json:"skill"`
	CategoryID int    `json:"category_id"`
	Category   string `json:"category"`
	Likes      int64  `json:"likes"`
	UpdatedAt  string `json:"updated_at"`
	CreatedAt  string `json:"created_at"`
}

// FromDomain: Domain -> Response
func NewArticleFromDomain(a *domain.Article) Article {
	return Article{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		AuthorID:   a.User.ID,
		UserName:   a.User.Name,
		SkillID:    int(a.Skill),
		Skill:      a.Skill.String(),
		CategoryID: int(a.Category),
		Category:   a.Category.String(),
		Likes:      a.Likes,
		UpdatedAt:  a.UpdatedAt.Format("2006-01-02 15:04:05"),
		CreatedAt:  a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func NewArticlesFromDomain(list []domain.Article) []Article {
	res := make([]Article, len(list))
	for i := range list {
		res[i] = NewArticleFromDomain(&list[i])
	}
	return res
}

type Like struct {
	ArticleID int64 `json:"article_id"`
	Liked     bool  `json:"liked"`
	Likes     int64 `json:"likes"`
}
