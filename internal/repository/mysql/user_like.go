package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/errorpool/domain"
	"github.com/Guyuepp/errorpool/internal/repository/mysql/model"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{db}
}

func (m *likeRepository) GetByArticleAndUser(ctx context.Context, articleID, userID int64) (domain.UserLike, error) {
	var like model.UserLike
	err := conn(ctx, m.DB).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Take(&like).Error
	if err != nil {
		return domain.UserLike{}, translateError(err, "get like")
	}
	return like.ToDomain(), nil
}

func (m *likeRepository) Store(ctx context.Context, like *domain.UserLike) error {
	likeModel := model.NewUserLikeFromDomain(like)
	if err := conn(ctx, m.DB).Create(likeModel).Error; err != nil {
		return translateError(err, "store like")
	}
	like.ID = likeModel.ID
	like.CreatedAt = likeModel.CreatedAt
	return nil
}

func (m *likeRepository) Delete(ctx context.Context, id int64) error {
	result := conn(ctx, m.DB).Delete(&model.UserLike{}, id)
	if result.Error != nil {
		return translateError(result.Error, "delete like")
	}

	// 记录已被并发的取消点赞删除
	if result.RowsAffected == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (m *likeRepository) CountByArticle(ctx context.Context, articleID int64) (int64, error) {
	var count int64
	err := conn(ctx, m.DB).
		Model(&model.UserLike{}).
		Where("article_id = ?", articleID).
		Count(&count).Error
	if err != nil {
		return 0, translateError(err, "count likes")
	}
	return count, nil
}

func (m *likeRepository) DeleteByArticle(ctx context.Context, articleID int64) (int64, error) {
	result := conn(ctx, m.DB).
		Where("article_id = ?", articleID).
		Delete(&model.UserLike{})
	if result.Error != nil {
		return 0, translateError(result.Error, "delete likes of article")
	}
	return result.RowsAffected, nil
}
