package domain

import "context"

type LikesReconcileWorker interface {
	Start(ctx context.Context)

	// ReconcileOnce walks every article once and returns the number of repaired like counters
	ReconcileOnce(ctx context.Context) (int64, error)
}
