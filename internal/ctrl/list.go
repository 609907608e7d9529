package ctrl

import (
	"context"

	"github.com/google/uuid"
	"github.com/ichewm/MedicalBible-sub005/internal/config"
	"github.com/ichewm/MedicalBible-sub005/internal/dto"
	"github.com/opentracing/opentracing-go"
)

// ListFamilies returns a page of a user's families from the ledger. Backed
// by the durable tier on purpose: revoked and expired families stay visible
// for audit until the sweeper removes them, long after cache TTLs fire.
func (c *Controller) ListFamilies(
	ctx context.Context,
	userID uuid.UUID,
	page, size int,
	filters map[string]any,
) (*dto.PaginatedFamilyResponse, error) {
	const op = "token.ListFamilies.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if page < 1 {
		page = config.DefaultPage
	}
	if size < 1 || size > config.MaxListSize {
		size = config.DefaultSize
	}

	data, count, err := c.repo.ListFamilies(ctx, userID, page, size, filters)
	if err != nil {
		return nil, err
	}

	totalPages := int((count + int64(size) - 1) / int64(size))

	return &dto.PaginatedFamilyResponse{
		Data:        data,
		Count:       count,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNextPage: page < totalPages,
	}, nil
}
