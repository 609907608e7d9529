package ctrl

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ichewm/MedicalBible-sub005/internal/auth/jwt"
	"github.com/ichewm/MedicalBible-sub005/internal/config"
	"github.com/ichewm/MedicalBible-sub005/internal/dto"
	md "github.com/ichewm/MedicalBible-sub005/internal/models"
	metrics "github.com/ichewm/MedicalBible-sub005/internal/observability/metrics/prometheus"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Issue opens a new token family for a login on a device and mints its
// first refresh token at index 0. The fast store write is fatal on failure;
// the ledger mirror is not.
func (c *Controller) Issue(
	ctx context.Context,
	userID uuid.UUID,
	deviceID string,
) (*dto.RefreshIssueResult, error) {
	const op = "token.Issue.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	now := time.Now()
	fam := &md.TokenFamily{
		FamilyID:     uuid.New(),
		UserID:       userID,
		DeviceID:     deviceID,
		TokenChain:   []uuid.UUID{uuid.New()},
		CurrentIndex: 0,
		ExpiresAt:    now.Add(c.familyLifetime),
	}
	tokenID := fam.TokenChain[0]

	if err := c.cache.CreateFamily(ctx, fam, c.familyLifetime); err != nil {
		return nil, err
	}

	meta := &md.TokenMeta{
		TokenID:    tokenID,
		FamilyID:   fam.FamilyID,
		UserID:     userID,
		DeviceID:   deviceID,
		TokenIndex: 0,
		ExpiresAt:  fam.ExpiresAt,
	}
	if err := c.cache.SetTokenMeta(ctx, meta, c.familyLifetime); err != nil {
		return nil, err
	}

	c.mirrorFamily(ctx, fam)

	token, err := c.au.NewRefreshToken(
		ctx, jwt.RefreshClaims{
			UID:        userID,
			DeviceID:   deviceID,
			FamilyID:   fam.FamilyID,
			TokenID:    tokenID,
			TokenIndex: 0,
		}, c.familyLifetime,
	)
	if err != nil {
		return nil, err
	}

	metrics.FamiliesIssued.Inc()
	zap.L().Debug(
		"issued new token family",
		zap.String("op", op),
		zap.String("familyID", fam.FamilyID.String()),
		zap.String("userID", userID.String()),
	)

	return &dto.RefreshIssueResult{
		Token:      token,
		FamilyID:   fam.FamilyID,
		TokenID:    tokenID,
		TokenIndex: 0,
		ExpiresAt:  fam.ExpiresAt,
	}, nil
}

// mirrorFamily writes the family to the ledger with a bounded timeout.
// Failures are logged and swallowed: the fast store stays authoritative and
// the hot path never depends on the mirror landing.
func (c *Controller) mirrorFamily(ctx context.Context, fam *md.TokenFamily) {
	const op = "token.mirrorFamily.ctrl"

	mirrorCtx, cancel := context.WithTimeout(ctx, config.DefaultStoreTimeout)
	defer cancel()

	if err := c.repo.UpsertFamily(mirrorCtx, fam); err != nil {
		zap.L().Warn(
			"ledger mirror write failed",
			zap.String("op", op),
			zap.String("familyID", fam.FamilyID.String()),
			zap.Error(err),
		)
	}
}
