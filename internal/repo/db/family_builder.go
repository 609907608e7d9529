package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type familyListQuery struct {
	countQ    string
	countArgs []any
	dataQ     string
	dataArgs  []any
}

func buildFamilyListQuery(
	ctx context.Context,
	userID uuid.UUID,
	page, size int,
	filters map[string]any,
) (familyListQuery, error) {
	const op = "families.buildFamilyListQuery.repo"

	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	query := sq.Select().
		From("token_families f").
		Where(sq.Eq{"f.user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	if isRevoked, ok := filters["is_revoked"].(bool); ok {
		query = query.Where(sq.Eq{"f.is_revoked": isRevoked})
	}

	if activeOnly, ok := filters["active_only"].(bool); ok && activeOnly {
		query = query.Where("f.expires_at > now()")
	}

	if deviceID, ok := filters["device_id"].(string); ok && deviceID != "" {
		query = query.Where(sq.Eq{"f.device_id": deviceID})
	}

	countSql, countArgs, err := query.Columns("COUNT(f.family_id)").ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build count query", zap.String("op", op), zap.Error(err))
		return familyListQuery{}, err
	}

	dataSql, dataArgs, err := query.
		Columns(
			"f.family_id",
			"f.user_id",
			"f.device_id",
			"f.token_chain",
			"f.current_index",
			"f.is_revoked",
			"f.revoked_reason",
			"f.expires_at",
			"f.created_at",
			"f.updated_at",
		).
		OrderBy("f.created_at DESC").
		Limit(uint64(size)).
		Offset(uint64((page - 1) * size)).
		ToSql()
	if err != nil {
		span.SetTag("error", true)
		zap.L().Error("failed to build data query", zap.String("op", op), zap.Error(err))
		return familyListQuery{}, err
	}

	return familyListQuery{
		countQ:    countSql,
		countArgs: countArgs,
		dataQ:     dataSql,
		dataArgs:  dataArgs,
	}, nil
}
