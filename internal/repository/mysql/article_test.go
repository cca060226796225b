package mysql_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/errorpool/domain"
	"github.com/Guyuepp/errorpool/internal/repository/mysql"
)

var articleColumns = []string{"id", "title", "content", "user_id", "skill", "category", "likes", "updated_at", "created_at"}

func TestArticleGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	rows := sqlmock.NewRows(articleColumns).
		AddRow(1, "NPE in service", "stack trace...", 11, 2, 3, 4, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `article` WHERE id = ?")).WillReturnRows(rows)

	repo := mysql.NewArticleRepository(db)
	ar, err := repo.GetByID(context.TODO(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ar.ID)
	assert.Equal(t, int64(11), ar.User.ID)
	assert.Equal(t, domain.SkillSpring, ar.Skill)
	assert.Equal(t, domain.CategoryTip, ar.Category)
	assert.Equal(t, int64(4), ar.Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `article` WHERE id = ?")).
		WillReturnRows(sqlmock.NewRows(articleColumns))

	repo := mysql.NewArticleRepository(db)
	_, err := repo.GetByID(context.TODO(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArticleStore(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `article`")).
		WillReturnResult(sqlmock.NewResult(12, 1))

	ar := &domain.Article{
		Title:    "Bean cycle",
		Content:  "circular reference",
		User:     domain.User{ID: 1},
		Skill:    domain.SkillSpring,
		Category: domain.CategoryError,
	}
	repo := mysql.NewArticleRepository(db)
	err := repo.Store(context.TODO(), ar)
	require.NoError(t, err)
	assert.Equal(t, int64(12), ar.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleUpdate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `article` SET")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := mysql.NewArticleRepository(db)
		ar := &domain.Article{ID: 3, Title: "t", Content: "c", Category: domain.CategoryQuestion}
		require.NoError(t, repo.Update(context.TODO(), ar))
		assert.False(t, ar.UpdatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deleted concurrently", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `article` SET")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := mysql.NewArticleRepository(db)
		err := repo.Update(context.TODO(), &domain.Article{ID: 3, Title: "t", Content: "c"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestArticleDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `article`")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := mysql.NewArticleRepository(db)
	err := repo.Delete(context.TODO(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleFetchTopByLikes(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	rows := sqlmock.NewRows(articleColumns).
		AddRow(1, "a", "c", 1, 2, 3, 5, now, now).
		AddRow(2, "b", "c", 1, 2, 3, 5, now, now).
		AddRow(3, "c", "c", 1, 2, 3, 3, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `article` ORDER BY likes desc,id asc LIMIT")).
		WillReturnRows(rows)

	repo := mysql.NewArticleRepository(db)
	list, err := repo.FetchTopByLikes(context.TODO(), 5)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{list[0].ID, list[1].ID, list[2].ID})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleFetchTopBySkillByLikes(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `article` WHERE skill = ? ORDER BY likes desc,id asc LIMIT")).
		WillReturnRows(sqlmock.NewRows(articleColumns))

	repo := mysql.NewArticleRepository(db)
	list, err := repo.FetchTopBySkillByLikes(context.TODO(), domain.SkillGo, 5)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleFetchByAuthor(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `article` WHERE user_id = ? ORDER BY created_at desc,id desc LIMIT")).
		WillReturnRows(sqlmock.NewRows(articleColumns).AddRow(8, "a", "c", 7, 1, 1, 0, now, now))

	repo := mysql.NewArticleRepository(db)
	list, err := repo.FetchByAuthor(context.TODO(), 7, domain.AuthorArticlesLimit)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(7), list[0].User.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleAddLikes(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `article` SET `likes`=likes + ? WHERE id = ?")).
			WithArgs(1, 3).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("SELECT likes FROM `article` WHERE id = ?")).
			WillReturnRows(sqlmock.NewRows([]string{"likes"}).AddRow(4))

		repo := mysql.NewArticleRepository(db)
		likes, err := repo.AddLikes(context.TODO(), 3, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(4), likes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("article gone", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE `article` SET `likes`=likes + ?")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := mysql.NewArticleRepository(db)
		_, err := repo.AddLikes(context.TODO(), 3, -1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestArticleRecountLikes(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `article` SET `likes`=(SELECT COUNT(*) FROM user_likes")).
		WillReturnResult(sqlmock.NewResult(0, 2))

	repo := mysql.NewArticleRepository(db)
	fixed, err := repo.RecountLikes(context.TODO(), []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(2), fixed)

	fixed, err = repo.RecountLikes(context.TODO(), nil)
	require.NoError(t, err)
	assert.Zero(t, fixed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
