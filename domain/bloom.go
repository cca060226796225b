package domain

import "context"

// BloomRepository is a probabilistic set of existing article ids
type BloomRepository interface {
	// Add 将文章 ID 加入过滤器; 过滤器未加载时什么也不做
	Add(ctx context.Context, id int64) error

	// Exists reports whether id may exist.
	// false means the article definitely does not exist (答 404, 不查库).
	// An uninitialized filter always answers true.
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd 用于启动时批量加载
	BulkAdd(ctx context.Context, ids []int64) error

	// Reset drops the filter; Exists answers true until the next BulkAdd.
	Reset(ctx context.Context) error
}
