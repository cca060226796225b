package like

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/errorpool/domain"
)

const (
	maxToggleAttempts = 3
	retryBackoff      = 15 * time.Millisecond
)

// articleGetter resolves the target article; missing articles fail with domain.ErrNotFound
type articleGetter interface {
	GetByID(ctx context.Context, id int64) (domain.Article, error)
}

type Service struct {
	articles    articleGetter
	articleRepo domain.ArticleRepository
	likeRepo    domain.LikeRepository
	locker      domain.LikeLocker
	tx          domain.Transactor
}

var _ domain.LikeUsecase = (*Service)(nil)

func NewService(articles articleGetter, a domain.ArticleRepository, l domain.LikeRepository, locker domain.LikeLocker, tx domain.Transactor) *Service {
	return &Service{
		articles:    articles,
		articleRepo: a,
		likeRepo:    l,
		locker:      locker,
		tx:          tx,
	}
}

// Toggle flips the like of user on an article. Two calls in a row cancel out.
//
// The like row and the article's counter change in one transaction. Toggles of the
// same (article, user) pair are serialized by the like lock, and the unique index on
// user_likes catches whatever slips past it; both surface as domain.ErrConflict
// and are retried a bounded number of times.
func (s *Service) Toggle(ctx context.Context, articleID int64, user domain.User) (domain.LikeResult, error) {
	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		return domain.LikeResult{}, err
	}

	key := domain.UserLike{ArticleID: articleID, UserID: user.ID}
	var lastErr error
	for attempt := 1; attempt <= maxToggleAttempts; attempt++ {
		res, err := s.toggleOnce(ctx, key)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return domain.LikeResult{}, err
		}

		lastErr = err
		logrus.WithFields(logrus.Fields{
			"article_id": articleID,
			"user_id":    user.ID,
			"attempt":    attempt,
		}).Warnf("like toggle conflict: %v", err)
		if attempt == maxToggleAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return domain.LikeResult{}, ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return domain.LikeResult{}, fmt.Errorf("%w: like toggle on article %d gave up after %d attempts: %v",
		domain.ErrInternalServerError, articleID, maxToggleAttempts, lastErr)
}

func (s *Service) toggleOnce(ctx context.Context, key domain.UserLike) (res domain.LikeResult, err error) {
	unlock, err := s.locker.Lock(ctx, key)
	switch {
	case err == nil:
		defer unlock()
	case errors.Is(err, domain.ErrConflict), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return res, err
	default:
		// 锁服务不可用时退化为只依赖唯一索引
		logrus.Warnf("like lock unavailable, toggling without it: %v", err)
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		delta := int64(1)
		existing, err := s.likeRepo.GetByArticleAndUser(ctx, key.ArticleID, key.UserID)
		switch {
		case err == nil:
			if err := s.likeRepo.Delete(ctx, existing.ID); err != nil {
				return err
			}
			delta = -1
		case errors.Is(err, domain.ErrNotFound):
			like := key
			like.CreatedAt = time.Now()
			if err := s.likeRepo.Store(ctx, &like); err != nil {
				return err
			}
		default:
			return err
		}

		likes, err := s.articleRepo.AddLikes(ctx, key.ArticleID, delta)
		if err != nil {
			return err
		}
		res = domain.LikeResult{Liked: delta > 0, Likes: likes}
		return nil
	})
	if err != nil {
		return domain.LikeResult{}, err
	}
	return res, nil
}

// CountLikes returns the committed number of like records of the article
func (s *Service) CountLikes(ctx context.Context, articleID int64) (int64, error) {
	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		return 0, err
	}
	return s.likeRepo.CountByArticle(ctx, articleID)
}

func (s *Service) IsLiked(ctx context.Context, articleID int64, user domain.User) (bool, error) {
	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		return false, err
	}

	_, err := s.likeRepo.GetByArticleAndUser(ctx, articleID, user.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
