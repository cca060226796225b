package rank

import (
	"context"

	"github.com/Guyuepp/errorpool/domain"
)

type Service struct {
	articleRepo domain.ArticleRepository
	taxonomy    domain.TaxonomyResolver
}

var _ domain.RankUsecase = (*Service)(nil)

// NewService will create a new ranking service.
// Rankings are read straight from the article store so they never lag a committed like.
func NewService(a domain.ArticleRepository, t domain.TaxonomyResolver) *Service {
	return &Service{
		articleRepo: a,
		taxonomy:    t,
	}
}

func normalizeLimit(limit int64) int64 {
	if limit <= 0 {
		return domain.DefaultRankLimit
	}
	return min(limit, domain.MaxRankLimit)
}

// TopGlobal returns the most liked articles, ties broken by ascending id
func (s *Service) TopGlobal(ctx context.Context, limit int64) ([]domain.Article, error) {
	return s.articleRepo.FetchTopByLikes(ctx, normalizeLimit(limit))
}

// TopInSkill is TopGlobal restricted to one skill
func (s *Service) TopInSkill(ctx context.Context, skillID int, limit int64) ([]domain.Article, error) {
	skill, err := s.taxonomy.ResolveSkill(skillID)
	if err != nil {
		return nil, err
	}
	return s.articleRepo.FetchTopBySkillByLikes(ctx, skill, normalizeLimit(limit))
}
