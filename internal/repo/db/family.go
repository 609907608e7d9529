package db

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	md "github.com/ichewm/MedicalBible-sub005/internal/models"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// UpsertFamily mirrors the current state of a family chain into the ledger.
// The revocation latch is sticky on the ledger side as well: an upsert can
// never clear is_revoked once set.
func (r *Repository) UpsertFamily(ctx context.Context, fam *md.TokenFamily) error {
	const op = "families.UpsertFamily.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	chain, err := json.Marshal(fam.TokenChain)
	if err != nil {
		return err
	}

	_, err = r.conn.ExecContext(
		ctx,
		familyUpsertQ,
		fam.FamilyID,
		fam.UserID,
		fam.DeviceID,
		chain,
		fam.CurrentIndex,
		fam.IsRevoked,
		fam.RevokedReason,
		fam.ExpiresAt,
	)
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error(
			"failed to upsert family",
			zap.String("op", op),
			zap.String("familyID", fam.FamilyID.String()),
			zap.Error(err),
		)

		return err
	}

	return nil
}

// RevokeFamily marks a single family revoked in the ledger. Rows already
// revoked keep their original reason.
func (r *Repository) RevokeFamily(ctx context.Context, familyID uuid.UUID, reason string) error {
	const op = "families.RevokeFamily.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, familyRevokeQ, familyID, reason)
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error(
			"failed to revoke family",
			zap.String("op", op),
			zap.String("familyID", familyID.String()),
			zap.Error(err),
		)

		return err
	}

	return nil
}

// RevokeAllByUser marks every non-revoked family of a user revoked. Unlike
// the cache-side enumeration this also reaches families already evicted
// from the fast store.
func (r *Repository) RevokeAllByUser(ctx context.Context, userID uuid.UUID, reason string) error {
	const op = "families.RevokeAllByUser.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	_, err := r.conn.ExecContext(ctx, familyRevokeByUserQ, userID, reason)
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error(
			"failed to revoke user families",
			zap.String("op", op),
			zap.String("userID", userID.String()),
			zap.Error(err),
		)

		return err
	}

	return nil
}

// DeleteExpired purges ledger rows whose family lifetime has passed and
// reports how many were removed. Cache entries need no equivalent sweep,
// they expire via TTL.
func (r *Repository) DeleteExpired(ctx context.Context) (int64, error) {
	const op = "families.DeleteExpired.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.ExecContext(ctx, familyDeleteExpiredQ)
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to delete expired families", zap.String("op", op), zap.Error(err))
		return 0, err
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return count, nil
}

// ListFamilies returns a page of a user's families from the ledger for
// audit surfaces. The ledger outlives cache TTLs, so revoked and expired
// families remain visible here until the sweeper removes them.
func (r *Repository) ListFamilies(
	ctx context.Context,
	userID uuid.UUID,
	page, size int,
	filters map[string]any,
) ([]*md.TokenFamily, int64, error) {
	const op = "families.ListFamilies.repo"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	q, err := buildFamilyListQuery(ctx, userID, page, size, filters)
	if err != nil {
		return nil, 0, err
	}

	var count int64
	if err = r.conn.QueryRowxContext(ctx, q.countQ, q.countArgs...).Scan(&count); err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to count families", zap.String("op", op), zap.Error(err))
		return nil, 0, err
	}

	rows, err := r.conn.QueryxContext(ctx, q.dataQ, q.dataArgs...)
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to list families", zap.String("op", op), zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	res := make([]*md.TokenFamily, 0, size)
	for rows.Next() {
		fam := &md.TokenFamily{}
		var chain []byte
		err = rows.Scan(
			&fam.FamilyID,
			&fam.UserID,
			&fam.DeviceID,
			&chain,
			&fam.CurrentIndex,
			&fam.IsRevoked,
			&fam.RevokedReason,
			&fam.ExpiresAt,
			&fam.CreatedAt,
			&fam.UpdatedAt,
		)
		if err != nil {
			span.SetTag("error", true)
			zap.L().Error("failed to scan family row", zap.String("op", op), zap.Error(err))
			return nil, 0, err
		}

		if err = json.Unmarshal(chain, &fam.TokenChain); err != nil {
			span.SetTag("error", true)
			zap.L().Error(
				"failed to decode token chain",
				zap.String("op", op),
				zap.String("familyID", fam.FamilyID.String()),
				zap.Error(err),
			)

			return nil, 0, err
		}

		res = append(res, fam)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return res, count, nil
}
