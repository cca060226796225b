package domain

import (
	"context"
	"time"
)

// UserLike is representing a like record: the user currently likes the article.
// At most one record exists per (ArticleID, UserID).
type UserLike struct {
	ID        int64
	ArticleID int64
	UserID    int64
	CreatedAt time.Time
}

// LikeResult is the state of a like after a toggle
type LikeResult struct {
	Liked bool
	Likes int64
}

// LikeRepository defines the contract for like record persistence
type LikeRepository interface {
	// GetByArticleAndUser returns ErrNotFound if the user does not like the article.
	GetByArticleAndUser(ctx context.Context, articleID, userID int64) (UserLike, error)

	// Store inserts a like record and backfills its ID.
	// Returns ErrConflict if the (article, user) pair already exists.
	Store(ctx context.Context, like *UserLike) error

	// Delete removes a like record by its ID.
	// Returns ErrConflict if the record was already gone.
	Delete(ctx context.Context, id int64) error

	CountByArticle(ctx context.Context, articleID int64) (int64, error)

	// DeleteByArticle removes every like record of an article.
	DeleteByArticle(ctx context.Context, articleID int64) (int64, error)
}

// LikeLocker serializes like toggles of the same (article, user) pair.
type LikeLocker interface {
	// Lock blocks until the key of like is held or the wait budget runs out,
	// in which case it returns ErrConflict. The returned func releases the lock.
	Lock(ctx context.Context, like UserLike) (unlock func(), err error)
}

type LikeUsecase interface {
	// Toggle flips the like state of user on the article.
	Toggle(ctx context.Context, articleID int64, user User) (LikeResult, error)
	CountLikes(ctx context.Context, articleID int64) (int64, error)
	IsLiked(ctx context.Context, articleID int64, user User) (bool, error)
}
