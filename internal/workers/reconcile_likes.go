package workers

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/errorpool/domain"
)

const (
	reconcileBatchSize   = 500
	reconcileConcurrency = 4
)

type reconcileLikesWorker struct {
	ArticleRepo domain.ArticleRepository
	interval    time.Duration
}

var _ domain.LikesReconcileWorker = (*reconcileLikesWorker)(nil)

// NewReconcileLikesWorker 定期用 user_likes 的真实条数修正 article.likes
func NewReconcileLikesWorker(ar domain.ArticleRepository, interval time.Duration) *reconcileLikesWorker {
	return &reconcileLikesWorker{
		ArticleRepo: ar,
		interval:    interval,
	}
}

func (w *reconcileLikesWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fixed, err := w.ReconcileOnce(ctx)
			if err != nil {
				logrus.Errorf("failed to reconcile like counters: %v", err)
				continue
			}
			if fixed > 0 {
				logrus.Warnf("reconciled %d drifted like counters", fixed)
			}
		case <-ctx.Done():
			logrus.Info("shutting down ReconcileLikesWorker")
			return
		}
	}
}

func (w *reconcileLikesWorker) ReconcileOnce(ctx context.Context) (int64, error) {
	var fixed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reconcileConcurrency)

	var cursor int64
	for {
		ids, err := w.ArticleRepo.FetchIDs(gctx, cursor, reconcileBatchSize)
		if err != nil {
			_ = g.Wait()
			return fixed.Load(), err
		}
		if len(ids) == 0 {
			break
		}
		cursor = ids[len(ids)-1]

		g.Go(func() error {
			n, err := w.ArticleRepo.RecountLikes(gctx, ids)
			if err != nil {
				return err
			}
			fixed.Add(n)
			return nil
		})

		if len(ids) < reconcileBatchSize {
			break
		}
	}

	err := g.Wait()
	return fixed.Load(), err
}
