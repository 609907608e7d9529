package jwt

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ichewm/MedicalBible-sub005/internal/config"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Port interface {
	AccessTTL() time.Duration
	NewAccessToken(ctx context.Context, uid uuid.UUID, deviceID string) (string, error)
	NewRefreshToken(ctx context.Context, c RefreshClaims, ttl time.Duration) (string, error)
	ParseRefreshClaims(ctx context.Context, tokenStr string) (RefreshClaims, error)
}

// Core signs and verifies both token kinds. Access and refresh tokens use
// distinct secrets so a leaked access secret cannot forge refresh tokens.
type Core struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
	accessTTL     time.Duration
}

type AccessClaims struct {
	UID      uuid.UUID `json:"uid"`
	DeviceID string    `json:"did"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	UID        uuid.UUID `json:"uid"`
	DeviceID   string    `json:"did"`
	FamilyID   uuid.UUID `json:"fid"`
	TokenID    uuid.UUID `json:"tid"`
	TokenIndex int       `json:"idx"`
	jwt.RegisteredClaims
}

func New(conf config.Config) *Core {
	return &Core{
		accessSecret:  []byte(conf.Auth.JWT.AccessSecret),
		refreshSecret: []byte(conf.Auth.JWT.RefreshSecret),
		issuer:        conf.Auth.JWT.Issuer,
		accessTTL:     conf.Token.AccessDuration,
	}
}

func (c *Core) AccessTTL() time.Duration {
	return c.accessTTL
}

func (c *Core) NewAccessToken(ctx context.Context, uid uuid.UUID, deviceID string) (string, error) {
	const op = "auth.NewAccessToken.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	signed, err := jwt.NewWithClaims(
		jwt.SigningMethodHS256, &AccessClaims{
			UID:      uid,
			DeviceID: deviceID,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.accessTTL)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Issuer:    c.issuer,
			},
		},
	).SignedString(c.accessSecret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.String("op", op),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) NewRefreshToken(
	ctx context.Context,
	claims RefreshClaims,
	ttl time.Duration,
) (string, error) {
	const op = "auth.NewRefreshToken.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Issuer:    c.issuer,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).
		SignedString(c.refreshSecret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.String("op", op),
			zap.String("familyID", claims.FamilyID.String()),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) ParseRefreshClaims(ctx context.Context, tokenStr string) (RefreshClaims, error) {
	const op = "auth.ParseRefreshClaims.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := RefreshClaims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return c.refreshSecret, nil
		},
	)
	if err != nil {
		zap.L().Debug(
			"failed to parse refresh claims",
			zap.String("op", op),
			zap.Error(err),
		)

		return claims, ErrInvalidToken
	}

	if !token.Valid {
		return claims, ErrInvalidToken
	}

	return claims, nil
}
