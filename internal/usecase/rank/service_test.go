package rank_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/errorpool/domain"
	"github.com/Guyuepp/errorpool/domain/mocks"
	"github.com/Guyuepp/errorpool/internal/taxonomy"
	ucase "github.com/Guyuepp/errorpool/internal/usecase/rank"
)

// likes desc, id asc is applied by the store query; the usecase must not reorder it
func TestTopInSkillKeepsStoreOrder(t *testing.T) {
	repo := mocks.NewArticleRepository(t)
	ranked := []domain.Article{
		{ID: 1, Skill: domain.SkillGo, Likes: 5},
		{ID: 2, Skill: domain.SkillGo, Likes: 5},
		{ID: 3, Skill: domain.SkillGo, Likes: 3},
	}
	repo.On("FetchTopBySkillByLikes", mock.Anything, domain.SkillGo, int64(5)).Return(ranked, nil).Once()

	svc := ucase.NewService(repo, taxonomy.NewResolver())
	res, err := svc.TopInSkill(context.TODO(), int(domain.SkillGo), 5)
	require.NoError(t, err)

	ids := make([]int64, 0, len(res))
	for _, ar := range res {
		ids = append(ids, ar.ID)
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestTopInSkillUnknownSkill(t *testing.T) {
	svc := ucase.NewService(mocks.NewArticleRepository(t), taxonomy.NewResolver())
	_, err := svc.TopInSkill(context.TODO(), 77, 5)
	assert.ErrorIs(t, err, domain.ErrUnknownTaxonomy)
}

func TestTopGlobalLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int64
		want  int64
	}{
		{"default", 0, domain.DefaultRankLimit},
		{"negative", -3, domain.DefaultRankLimit},
		{"as asked", 10, 10},
		{"capped", 1000, domain.MaxRankLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewArticleRepository(t)
			repo.On("FetchTopByLikes", mock.Anything, tt.want).Return([]domain.Article{}, nil).Once()

			svc := ucase.NewService(repo, taxonomy.NewResolver())
			_, err := svc.TopGlobal(context.TODO(), tt.limit)
			assert.NoError(t, err)
		})
	}
}
