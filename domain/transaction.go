package domain

import "context"

// Transactor runs fn inside one storage transaction.
// Repositories called with the ctx passed to fn join that transaction;
// a nested Transaction call joins the outer one.
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
