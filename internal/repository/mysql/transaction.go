package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/errorpool/domain"
)

type txKey struct{}

type transactor struct {
	DB *gorm.DB
}

var _ domain.Transactor = (*transactor)(nil)

// NewTransactor 创建事务管理器, 事务通过 ctx 传递给各个 repository
func NewTransactor(db *gorm.DB) *transactor {
	return &transactor{db}
}

func (t *transactor) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction carried by ctx, or db bound to ctx
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
