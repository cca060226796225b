package domain

import (
	"context"
	"time"
)

const (
	// DefaultRankLimit is the size of a "best articles" listing when the caller does not ask for one
	DefaultRankLimit = 5
	// MaxRankLimit caps ranking queries
	MaxRankLimit = 50
	// AuthorArticlesLimit is how many recent articles FetchByAuthor returns
	AuthorArticlesLimit = 5
)

// Article is representing the Article data struct
type Article struct {
	ID        int64     // Unique identifier for the article
	User      User      // Author information
	Skill     Skill     `validate:"required"`
	Category  Category  `validate:"required"`
	Title     string    `validate:"required,max=100"`
	Content   string    `validate:"required"`
	Likes     int64     // Denormalized count of UserLike rows referencing this article
	UpdatedAt time.Time // Last update timestamp
	CreatedAt time.Time // Creation timestamp
}

// IsWrittenBy reports whether u authored the article.
func (a *Article) IsWrittenBy(u User) bool {
	return a.User.ID == u.ID
}

// ArticlePatch carries the mutable content fields of an article.
// A nil field is left untouched.
type ArticlePatch struct {
	Title      *string
	Content    *string
	CategoryID *int
}

// ArticleRepository defines the contract for article data persistence
type ArticleRepository interface {
	// GetByID retrieves a single article by its ID.
	// Returns ErrNotFound if the article doesn't exist.
	GetByID(ctx context.Context, id int64) (Article, error)

	// Store creates a new article and backfills ID and timestamps.
	Store(ctx context.Context, a *Article) error

	// Update persists title, content and category of an existing article.
	// Returns ErrNotFound if the article doesn't exist.
	Update(ctx context.Context, ar *Article) error

	// Delete removes an article by its ID.
	// Returns ErrNotFound if not exists
	Delete(ctx context.Context, id int64) error

	FetchBySkillAndCategory(ctx context.Context, skill Skill, category Category) ([]Article, error)

	// FetchTopByLikes returns up to limit articles ordered by likes desc, id asc.
	FetchTopByLikes(ctx context.Context, limit int64) ([]Article, error)

	// FetchTopBySkillByLikes is FetchTopByLikes restricted to one skill.
	FetchTopBySkillByLikes(ctx context.Context, skill Skill, limit int64) ([]Article, error)

	// FetchByAuthor returns the newest articles written by uid.
	FetchByAuthor(ctx context.Context, uid int64, limit int64) ([]Article, error)

	// AddLikes atomically adds deltaLikes to the like counter and returns the new value.
	// Returns ErrNotFound if the article doesn't exist.
	AddLikes(ctx context.Context, id int64, deltaLikes int64) (int64, error)

	// FetchIDs returns up to limit article ids greater than cursor, ascending.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)

	// RecountLikes resets the like counter of the given articles to the number
	// of like records and returns how many counters were wrong.
	RecountLikes(ctx context.Context, ids []int64) (int64, error)
}

type ArticleUsecase interface {
	GetByID(ctx context.Context, id int64) (Article, error)
	Store(ctx context.Context, ar *Article) error
	Update(ctx context.Context, id int64, patch ArticlePatch, actingUser User) (Article, error)
	Delete(ctx context.Context, id int64, actingUser User) error
	FetchBySkillAndCategory(ctx context.Context, skillID, categoryID int) ([]Article, error)
	FetchByAuthor(ctx context.Context, author User) ([]Article, error)
	InitBloomFilter(ctx context.Context) error
}

type RankUsecase interface {
	TopGlobal(ctx context.Context, limit int64) ([]Article, error)
	TopInSkill(ctx context.Context, skillID int, limit int64) ([]Article, error)
}
