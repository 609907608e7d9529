package ctrl

import (
	"context"
	"time"

	metrics "github.com/ichewm/MedicalBible-sub005/internal/observability/metrics/prometheus"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// CleanupExpired removes ledger rows whose family expiry has passed and
// returns the number of rows deleted. Fast store entries expire on their
// own via TTL.
func (c *Controller) CleanupExpired(ctx context.Context) (int64, error) {
	const op = "token.CleanupExpired.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	count, err := c.repo.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}

	metrics.SweeperDeleted.Add(float64(count))
	return count, nil
}

// StartSweeper runs CleanupExpired on the given interval until the context
// is canceled. Sweep failures are logged and never fatal to the running
// system.
func (c *Controller) StartSweeper(ctx context.Context, interval time.Duration) {
	const op = "token.StartSweeper.ctrl"

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	zap.L().Info("Sweeper has been started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Sweeper has been stopped")
			return
		case <-ticker.C:
			count, err := c.CleanupExpired(ctx)
			if err != nil {
				zap.L().Error("sweep failed", zap.String("op", op), zap.Error(err))
				continue
			}

			zap.L().Info(
				"sweep completed",
				zap.String("op", op),
				zap.Int64("deleted", count),
			)
		}
	}
}
