package ctrl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ichewm/MedicalBible-sub005/internal/auth/jwt"
	"github.com/ichewm/MedicalBible-sub005/internal/cache/redis"
	"github.com/ichewm/MedicalBible-sub005/internal/config"
	"github.com/ichewm/MedicalBible-sub005/internal/dto"
	md "github.com/ichewm/MedicalBible-sub005/internal/models"
	metrics "github.com/ichewm/MedicalBible-sub005/internal/observability/metrics/prometheus"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Rotate exchanges the live refresh token of a family for the next one and
// mints a fresh access token alongside. Presenting any non-live index is
// treated as a replay and revokes the whole family. The index comparison is
// strict inequality: an index ahead of the live one is structurally
// impossible for a well-behaved client and is rejected the same way.
func (c *Controller) Rotate(ctx context.Context, oldToken string) (*dto.RotateResult, error) {
	const op = "token.Rotate.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := c.au.ParseRefreshClaims(ctx, oldToken)
	if err != nil {
		metrics.Rotations.WithLabelValues("invalid_token").Inc()
		return nil, ErrInvalidToken
	}

	fam, err := c.cache.GetFamily(ctx, claims.FamilyID)
	if err != nil && errors.Is(err, redis.ErrNotFound) {
		metrics.Rotations.WithLabelValues("family_not_found").Inc()
		return nil, ErrFamilyNotFound
	} else if err != nil {
		return nil, err
	}

	if fam.UserID != claims.UID {
		zap.L().Warn(
			"rotation with mismatched user",
			zap.String("op", op),
			zap.String("familyID", claims.FamilyID.String()),
			zap.String("claimedUserID", claims.UID.String()),
		)

		metrics.Rotations.WithLabelValues("user_mismatch").Inc()
		return nil, ErrUserMismatch
	}

	if fam.IsRevoked {
		metrics.Rotations.WithLabelValues("family_revoked").Inc()
		return nil, ErrFamilyRevoked
	}

	meta, err := c.cache.GetTokenMeta(ctx, claims.TokenID)
	if err != nil && errors.Is(err, redis.ErrNotFound) {
		metrics.Rotations.WithLabelValues("token_invalid").Inc()
		return nil, ErrTokenInvalid
	} else if err != nil {
		return nil, err
	}

	if meta.DeviceID != claims.DeviceID || meta.FamilyID != claims.FamilyID {
		zap.L().Warn(
			"rotation with desynchronized token metadata",
			zap.String("op", op),
			zap.String("familyID", claims.FamilyID.String()),
			zap.String("tokenID", claims.TokenID.String()),
		)

		metrics.Rotations.WithLabelValues("token_invalid").Inc()
		return nil, ErrTokenInvalid
	}

	newTokenID := uuid.New()
	newIndex, err := c.cache.AdvanceFamily(
		ctx, claims.FamilyID, claims.TokenIndex, newTokenID, reasonReplay,
	)
	if err != nil {
		switch {
		case errors.Is(err, redis.ErrIndexConflict):
			c.handleReplay(ctx, fam, claims)
			metrics.Rotations.WithLabelValues("replay").Inc()
			return nil, ErrReplayDetected
		case errors.Is(err, redis.ErrFamilyRevoked):
			metrics.Rotations.WithLabelValues("family_revoked").Inc()
			return nil, ErrFamilyRevoked
		case errors.Is(err, redis.ErrNotFound):
			metrics.Rotations.WithLabelValues("family_not_found").Inc()
			return nil, ErrFamilyNotFound
		default:
			return nil, err
		}
	}

	remaining := fam.Remaining(time.Now())
	fam.TokenChain = append(fam.TokenChain, newTokenID)
	fam.CurrentIndex = newIndex

	newMeta := &md.TokenMeta{
		TokenID:    newTokenID,
		FamilyID:   fam.FamilyID,
		UserID:     fam.UserID,
		DeviceID:   fam.DeviceID,
		TokenIndex: newIndex,
		ExpiresAt:  fam.ExpiresAt,
	}
	if err = c.cache.SetTokenMeta(ctx, newMeta, remaining); err != nil {
		return nil, err
	}

	c.mirrorFamily(ctx, fam)

	refresh, err := c.au.NewRefreshToken(
		ctx, jwt.RefreshClaims{
			UID:        fam.UserID,
			DeviceID:   fam.DeviceID,
			FamilyID:   fam.FamilyID,
			TokenID:    newTokenID,
			TokenIndex: newIndex,
		}, remaining,
	)
	if err != nil {
		return nil, err
	}

	access, err := c.au.NewAccessToken(ctx, fam.UserID, fam.DeviceID)
	if err != nil {
		return nil, err
	}

	metrics.Rotations.WithLabelValues("ok").Inc()

	return &dto.RotateResult{
		AccessToken:           access,
		RefreshToken:          refresh,
		TokenType:             "Bearer",
		AccessTokenTTLSeconds: int64(c.au.AccessTTL().Seconds()),
		FamilyID:              fam.FamilyID,
	}, nil
}

// handleReplay finishes revocation after the advance script has latched the
// family: it drops the family from the user's active index, leaves the
// revocation marker and mirrors the revoke to the ledger. All of it is
// best-effort, the latch in the fast store already fails every later
// rotation closed.
func (c *Controller) handleReplay(ctx context.Context, fam *md.TokenFamily, claims jwt.RefreshClaims) {
	const op = "token.handleReplay.ctrl"

	zap.L().Warn(
		"replay detected, revoking token family",
		zap.String("op", op),
		zap.String("familyID", fam.FamilyID.String()),
		zap.String("userID", fam.UserID.String()),
		zap.Int("presentedIndex", claims.TokenIndex),
		zap.Int("currentIndex", fam.CurrentIndex),
	)

	if err := c.cache.RevokeFamily(ctx, fam.FamilyID, fam.UserID, reasonReplay); err != nil {
		zap.L().Error(
			"failed to finish replay revocation in cache",
			zap.String("op", op),
			zap.String("familyID", fam.FamilyID.String()),
			zap.Error(err),
		)
	}

	mirrorCtx, cancel := context.WithTimeout(ctx, config.DefaultStoreTimeout)
	defer cancel()

	if err := c.repo.RevokeFamily(mirrorCtx, fam.FamilyID, reasonReplay); err != nil {
		zap.L().Warn(
			"failed to mirror replay revocation to ledger",
			zap.String("op", op),
			zap.String("familyID", fam.FamilyID.String()),
			zap.Error(err),
		)
	}

	metrics.ReplaysDetected.Inc()
	metrics.FamiliesRevoked.WithLabelValues(triggerReplay).Inc()
}

// Validate runs the same checks as Rotate but never mutates state and never
// auto-revokes. Ordinary invalidity is reported in the result; only
// infrastructure failures come back as errors.
func (c *Controller) Validate(ctx context.Context, token string) (*dto.ValidationResult, error) {
	const op = "token.Validate.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims, err := c.au.ParseRefreshClaims(ctx, token)
	if err != nil {
		return &dto.ValidationResult{Err: ErrInvalidToken}, nil
	}

	res := &dto.ValidationResult{
		UserID:     claims.UID,
		DeviceID:   claims.DeviceID,
		FamilyID:   claims.FamilyID,
		TokenIndex: claims.TokenIndex,
	}

	fam, err := c.cache.GetFamily(ctx, claims.FamilyID)
	if err != nil && errors.Is(err, redis.ErrNotFound) {
		res.Err = ErrFamilyNotFound
		return res, nil
	} else if err != nil {
		return nil, err
	}

	if fam.UserID != claims.UID {
		res.Err = ErrUserMismatch
		return res, nil
	}

	if fam.IsRevoked {
		res.Err = ErrFamilyRevoked
		return res, nil
	}

	meta, err := c.cache.GetTokenMeta(ctx, claims.TokenID)
	if err != nil && errors.Is(err, redis.ErrNotFound) {
		res.Err = ErrTokenInvalid
		return res, nil
	} else if err != nil {
		return nil, err
	}

	if meta.DeviceID != claims.DeviceID || meta.FamilyID != claims.FamilyID {
		res.Err = ErrTokenInvalid
		return res, nil
	}

	if claims.TokenIndex != fam.CurrentIndex {
		res.IsReplay = true
		res.Err = ErrReplayDetected
		return res, nil
	}

	res.Valid = true
	return res, nil
}
