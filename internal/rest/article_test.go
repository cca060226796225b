package rest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-faker/faker/v4"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/errorpool/domain"
	"github.com/Guyuepp/errorpool/domain/mocks"
	"github.com/Guyuepp/errorpool/internal/rest"
	"github.com/Guyuepp/errorpool/internal/rest/middleware"
	"github.com/Guyuepp/errorpool/internal/rest/response"
)

const testSecret = "test-secret"

type fixture struct {
	router   *gin.Engine
	articles *mocks.ArticleUsecase
	likes    *mocks.LikeUsecase
	ranks    *mocks.RankUsecase
}

func newFixture(t *testing.T) fixture {
	gin.SetMode(gin.TestMode)
	f := fixture{
		router:   gin.New(),
		articles: mocks.NewArticleUsecase(t),
		likes:    mocks.NewLikeUsecase(t),
		ranks:    mocks.NewRankUsecase(t),
	}
	rest.RegisterRoutes(f.router,
		rest.NewArticleHandler(f.articles),
		rest.NewLikeHandler(f.likes),
		rest.NewRankHandler(f.ranks),
		middleware.AuthMiddleware(testSecret),
	)
	return f
}

func token(t *testing.T, uid int64) string {
	claims := middleware.Claims{
		UserID: uid,
		Name:   faker.Username(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return s
}

func (f fixture) do(t *testing.T, method, path string, body any, uid int64) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if uid > 0 {
		req.Header.Set("Authorization", "Bearer "+token(t, uid))
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func userID(id int64) any {
	return mock.MatchedBy(func(u domain.User) bool { return u.ID == id })
}

func TestGetByID(t *testing.T) {
	f := newFixture(t)
	ar := domain.Article{ID: 1, User: domain.User{ID: 1}, Skill: domain.SkillSpring, Category: domain.CategoryTip, Title: faker.Word()}
	f.articles.On("GetByID", mock.Anything, int64(1)).Return(ar, nil).Once()
	f.articles.On("GetByID", mock.Anything, int64(2)).Return(domain.Article{}, domain.ErrNotFound).Once()

	rec := f.do(t, http.MethodGet, "/articles/1", nil, 0)
	require.Equal(t, http.StatusOK, rec.Code)
	var got response.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "SPRING", got.Skill)
	assert.Equal(t, "TIP", got.Category)
	assert.Zero(t, got.Likes)

	rec = f.do(t, http.MethodGet, "/articles/2", nil, 0)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/articles/abc", nil, 0)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFetchArticle(t *testing.T) {
	f := newFixture(t)
	f.articles.On("FetchBySkillAndCategory", mock.Anything, 2, 3).Return([]domain.Article{{ID: 1}}, nil).Once()
	f.articles.On("FetchBySkillAndCategory", mock.Anything, 9, 3).Return(nil, domain.ErrUnknownTaxonomy).Once()

	rec := f.do(t, http.MethodGet, "/articles?skill=2&category=3", nil, 0)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/articles?skill=9&category=3", nil, 0)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodGet, "/articles", nil, 0)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStore(t *testing.T) {
	body := map[string]any{"title": faker.Word(), "content": faker.Paragraph(), "skill_id": 2, "category_id": 3}

	t.Run("created", func(t *testing.T) {
		f := newFixture(t)
		f.articles.On("Store", mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			return a.User.ID == 1 && a.Skill == domain.SkillSpring
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Article).ID = 10
		}).Return(nil).Once()

		rec := f.do(t, http.MethodPost, "/articles", body, 1)
		require.Equal(t, http.StatusCreated, rec.Code)
		var got response.Article
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(10), got.ID)
		assert.Equal(t, int64(1), got.AuthorID)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(t, http.MethodPost, "/articles", body, 0)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token", func(t *testing.T) {
		f := newFixture(t)
		req := httptest.NewRequest(http.MethodPost, "/articles", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(t, http.MethodPost, "/articles", map[string]any{"title": "x"}, 1)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	f.articles.On("Update", mock.Anything, int64(1), mock.Anything, userID(1)).
		Return(domain.Article{ID: 1, Title: "new"}, nil).Once()
	f.articles.On("Update", mock.Anything, int64(1), mock.Anything, userID(2)).
		Return(domain.Article{}, domain.ErrForbidden).Once()

	rec := f.do(t, http.MethodPut, "/articles/1", map[string]any{"title": "new"}, 1)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPut, "/articles/1", map[string]any{"title": "new"}, 2)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"`+domain.ErrForbidden.Error()+`"}`, rec.Body.String())
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	f.articles.On("Delete", mock.Anything, int64(1), userID(1)).Return(nil).Once()
	f.articles.On("Delete", mock.Anything, int64(3), userID(1)).Return(domain.ErrNotFound).Once()

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/articles/1", nil, 1).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodDelete, "/articles/3", nil, 1).Code)
}

func TestFetchMine(t *testing.T) {
	f := newFixture(t)
	f.articles.On("FetchByAuthor", mock.Anything, userID(4)).Return([]domain.Article{{ID: 7}}, nil).Once()

	rec := f.do(t, http.MethodGet, "/articles/mine", nil, 4)
	require.Equal(t, http.StatusOK, rec.Code)
	var got []response.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].ID)
}
