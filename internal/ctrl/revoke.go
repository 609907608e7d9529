package ctrl

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ichewm/MedicalBible-sub005/internal/cache/redis"
	metrics "github.com/ichewm/MedicalBible-sub005/internal/observability/metrics/prometheus"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// RevokeFamily permanently invalidates a single family in both tiers.
// Idempotent: an absent family (already expired or evicted) is a successful
// no-op. An in-flight rotation racing this call observes the sticky latch
// on its next read and fails closed.
func (c *Controller) RevokeFamily(ctx context.Context, familyID uuid.UUID, reason string) error {
	const op = "token.RevokeFamily.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	fam, err := c.cache.GetFamily(ctx, familyID)
	if err != nil && errors.Is(err, redis.ErrNotFound) {
		zap.L().Debug(
			"revoke on absent family",
			zap.String("op", op),
			zap.String("familyID", familyID.String()),
		)

		return nil
	} else if err != nil {
		return err
	}

	if err = c.cache.RevokeFamily(ctx, familyID, fam.UserID, reason); err != nil {
		return err
	}

	if err = c.repo.RevokeFamily(ctx, familyID, reason); err != nil {
		return err
	}

	metrics.FamiliesRevoked.WithLabelValues(triggerManual).Inc()
	zap.L().Info(
		"token family revoked",
		zap.String("op", op),
		zap.String("familyID", familyID.String()),
		zap.String("reason", reason),
	)

	return nil
}

// RevokeAllForUser invalidates every family currently indexed under the
// user, then bulk-updates the ledger so families already evicted from the
// fast store are covered too. Used on password change and "log out
// everywhere". No-op when the user has no active families.
func (c *Controller) RevokeAllForUser(ctx context.Context, userID uuid.UUID, reason string) error {
	const op = "token.RevokeAllForUser.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	familyIDs, err := c.cache.ListUserFamilies(ctx, userID)
	if err != nil {
		return err
	}

	for _, familyID := range familyIDs {
		if err = c.cache.RevokeFamily(ctx, familyID, userID, reason); err != nil {
			return err
		}

		metrics.FamiliesRevoked.WithLabelValues(triggerBulk).Inc()
	}

	if err = c.repo.RevokeAllByUser(ctx, userID, reason); err != nil {
		return err
	}

	zap.L().Info(
		"revoked all user families",
		zap.String("op", op),
		zap.String("userID", userID.String()),
		zap.Int("count", len(familyIDs)),
		zap.String("reason", reason),
	)

	return nil
}
