package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/errorpool/domain"
	"github.com/Guyuepp/errorpool/internal/repository/mysql/model"
)

type articleRepository struct {
	DB *gorm.DB
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

// NewArticleRepository 创建文章数据库操作层
func NewArticleRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{db}
}

func toDomainList(articles []model.Article) []domain.Article {
	res := make([]domain.Article, len(articles))
	for i := range articles {
		res[i] = articles[i].ToDomain()
	}
	return res
}

func (m *articleRepository) GetByID(ctx context.Context, id int64) (res domain.Article, err error) {
	var article model.Article
	err = conn(ctx, m.DB).First(&article, "id = ?", id).Error
	if err != nil {
		return res, translateError(err, "get article")
	}
	res = article.ToDomain()
	return
}

func (m *articleRepository) Store(ctx context.Context, a *domain.Article) error {
	articleModel := model.NewArticleFromDomain(a)
	result := conn(ctx, m.DB).Create(articleModel)
	if result.Error != nil {
		return translateError(result.Error, "store article")
	}
	a.ID = articleModel.ID
	a.CreatedAt = articleModel.CreatedAt
	a.UpdatedAt = articleModel.UpdatedAt
	return nil
}

// Update 只更新内容字段, likes/user_id 永远不会被覆盖
func (m *articleRepository) Update(ctx context.Context, ar *domain.Article) error {
	ar.UpdatedAt = time.Now()
	result := conn(ctx, m.DB).Model(&model.Article{}).
		Where("id = ?", ar.ID).
		Updates(map[string]any{
			"title":      ar.Title,
			"content":    ar.Content,
			"category":   int(ar.Category),
			"updated_at": ar.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error, "update article")
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *articleRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, m.DB).Delete(&model.Article{}, id)
	if result.Error != nil {
		return translateError(result.Error, "delete article")
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *articleRepository) FetchBySkillAndCategory(ctx context.Context, skill domain.Skill, category domain.Category) ([]domain.Article, error) {
	var articles []model.Article
	err := conn(ctx, m.DB).
		Where("skill = ? AND category = ?", int(skill), int(category)).
		Find(&articles).Error
	if err != nil {
		return nil, translateError(err, "fetch articles by skill and category")
	}
	return toDomainList(articles), nil
}

func (m *articleRepository) FetchTopByLikes(ctx context.Context, limit int64) ([]domain.Article, error) {
	var articles []model.Article
	err := conn(ctx, m.DB).
		Order("likes desc").
		Order("id asc").
		Limit(int(limit)).
		Find(&articles).Error
	if err != nil {
		return nil, translateError(err, "fetch top articles")
	}
	return toDomainList(articles), nil
}

func (m *articleRepository) FetchTopBySkillByLikes(ctx context.Context, skill domain.Skill, limit int64) ([]domain.Article, error) {
	var articles []model.Article
	err := conn(ctx, m.DB).
		Where("skill = ?", int(skill)).
		Order("likes desc").
		Order("id asc").
		Limit(int(limit)).
		Find(&articles).Error
	if err != nil {
		return nil, translateError(err, "fetch top articles in skill")
	}
	return toDomainList(articles), nil
}

func (m *articleRepository) FetchByAuthor(ctx context.Context, uid int64, limit int64) ([]domain.Article, error) {
	var articles []model.Article
	err := conn(ctx, m.DB).
		Where("user_id = ?", uid).
		Order("created_at desc").
		Order("id desc").
		Limit(int(limit)).
		Find(&articles).Error
	if err != nil {
		return nil, translateError(err, "fetch articles by author")
	}
	return toDomainList(articles), nil
}

// AddLikes 原子地修改点赞数, 在同一事务内读回的值包含本事务的修改
func (m *articleRepository) AddLikes(ctx context.Context, id int64, deltaLikes int64) (int64, error) {
	db := conn(ctx, m.DB)
	result := db.Model(&model.Article{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", deltaLikes))
	if result.Error != nil {
		return 0, translateError(result.Error, "add likes")
	}

	if result.RowsAffected == 0 {
		return 0, domain.ErrNotFound
	}

	var likes int64
	err := db.Model(&model.Article{}).
		Select("likes").
		Where("id = ?", id).
		Scan(&likes).Error
	if err != nil {
		return 0, translateError(err, "read likes")
	}
	return likes, nil
}

func (m *articleRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = conn(ctx, m.DB).
		Model(&model.Article{}).
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, translateError(err, "fetch article ids")
	}
	return
}

const recountSubQuery = "(SELECT COUNT(*) FROM user_likes WHERE user_likes.article_id = article.id)"

// RecountLikes 用一条语句修正计数, 不会覆盖并发的增量
func (m *articleRepository) RecountLikes(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := conn(ctx, m.DB).Model(&model.Article{}).
		Where("id IN ?", ids).
		Where("likes <> " + recountSubQuery).
		UpdateColumn("likes", gorm.Expr(recountSubQuery))
	if result.Error != nil {
		return 0, translateError(result.Error, "recount likes")
	}
	return result.RowsAffected, nil
}
