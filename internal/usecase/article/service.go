package article

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/errorpool/domain"
)

const bloomLoadBatch = 1000

type Service struct {
	articleRepo domain.ArticleRepository
	likeRepo    domain.LikeRepository
	taxonomy    domain.TaxonomyResolver
	tx          domain.Transactor
	bloomRepo   domain.BloomRepository
	validate    *validator.Validate

	// 过滤器可能缺少已提交的 id 时置位, 查询直接走库
	bloomStale atomic.Bool
}

var _ domain.ArticleUsecase = (*Service)(nil)

// NewService will create a new article service object
func NewService(a domain.ArticleRepository, l domain.LikeRepository, t domain.TaxonomyResolver, tx domain.Transactor, b domain.BloomRepository) *Service {
	return &Service{
		articleRepo: a,
		likeRepo:    l,
		taxonomy:    t,
		tx:          tx,
		bloomRepo:   b,
		validate:    validator.New(),
	}
}

// GetByID is the single lookup every mutation goes through, so a missing
// article is always reported as ErrNotFound before any authorization check.
func (a *Service) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	if a.bloomStale.Load() {
		return a.articleRepo.GetByID(ctx, id)
	}

	exists, err := a.bloomRepo.Exists(ctx, id)
	if err != nil {
		logrus.Warnf("bloom filter check failed for article %d: %v", id, err)
	} else if !exists {
		return domain.Article{}, domain.ErrNotFound
	}

	return a.articleRepo.GetByID(ctx, id)
}

func (a *Service) Store(ctx context.Context, m *domain.Article) error {
	if _, err := a.taxonomy.ResolveSkill(int(m.Skill)); err != nil {
		return err
	}
	if _, err := a.taxonomy.ResolveCategory(int(m.Category)); err != nil {
		return err
	}
	if err := a.validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}

	m.ID = 0
	m.Likes = 0
	if err := a.articleRepo.Store(ctx, m); err != nil {
		return err
	}

	if err := a.bloomRepo.Add(ctx, m.ID); err != nil {
		// 缺少该 ID 的过滤器会误判 404, 丢弃过滤器让查询放行
		logrus.Errorf("failed to add article %d to bloom filter: %v", m.ID, err)
		if err := a.bloomRepo.Reset(ctx); err != nil {
			logrus.Errorf("failed to reset bloom filter, bypassing it until reload: %v", err)
			a.bloomStale.Store(true)
		}
	}
	return nil
}

func (a *Service) Update(ctx context.Context, id int64, patch domain.ArticlePatch, actingUser domain.User) (domain.Article, error) {
	ar, err := a.GetByID(ctx, id)
	if err != nil {
		return domain.Article{}, err
	}
	if !ar.IsWrittenBy(actingUser) {
		return domain.Article{}, domain.ErrForbidden
	}

	if patch.Title != nil {
		ar.Title = *patch.Title
	}
	if patch.Content != nil {
		ar.Content = *patch.Content
	}
	if patch.CategoryID != nil {
		c, err := a.taxonomy.ResolveCategory(*patch.CategoryID)
		if err != nil {
			return domain.Article{}, err
		}
		ar.Category = c
	}
	if err := a.validate.Struct(&ar); err != nil {
		return domain.Article{}, fmt.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}

	if err := a.articleRepo.Update(ctx, &ar); err != nil {
		return domain.Article{}, err
	}
	return ar, nil
}

// Delete removes the article together with its like records in one transaction
func (a *Service) Delete(ctx context.Context, id int64, actingUser domain.User) error {
	ar, err := a.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !ar.IsWrittenBy(actingUser) {
		return domain.ErrForbidden
	}

	return a.tx.Transaction(ctx, func(ctx context.Context) error {
		removed, err := a.likeRepo.DeleteByArticle(ctx, id)
		if err != nil {
			return err
		}
		if err := a.articleRepo.Delete(ctx, id); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"article_id": id,
			"likes":      removed,
		}).Info("article deleted")
		return nil
	})
}

func (a *Service) FetchBySkillAndCategory(ctx context.Context, skillID, categoryID int) ([]domain.Article, error) {
	skill, err := a.taxonomy.ResolveSkill(skillID)
	if err != nil {
		return nil, err
	}
	category, err := a.taxonomy.ResolveCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return a.articleRepo.FetchBySkillAndCategory(ctx, skill, category)
}

func (a *Service) FetchByAuthor(ctx context.Context, author domain.User) ([]domain.Article, error) {
	return a.articleRepo.FetchByAuthor(ctx, author.ID, domain.AuthorArticlesLimit)
}

// InitBloomFilter loads every article id into the bloom filter
func (a *Service) InitBloomFilter(ctx context.Context) error {
	var cursor int64
	for {
		ids, err := a.articleRepo.FetchIDs(ctx, cursor, bloomLoadBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			a.bloomStale.Store(false)
			return nil
		}
		if err := a.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
	}
}
