package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/ichewm/MedicalBible-sub005/internal/auth/jwt"
	"github.com/ichewm/MedicalBible-sub005/internal/config"
	md "github.com/ichewm/MedicalBible-sub005/internal/models"
)

// AppRepo is the durable ledger: a best-effort mirror of each family chain
// used for audit, bulk queries and recovery, never for hot-path decisions.
type AppRepo interface {
	UpsertFamily(ctx context.Context, fam *md.TokenFamily) error
	RevokeFamily(ctx context.Context, familyID uuid.UUID, reason string) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID, reason string) error
	DeleteExpired(ctx context.Context) (int64, error)
	ListFamilies(
		ctx context.Context,
		userID uuid.UUID,
		page, size int,
		filters map[string]any,
	) ([]*md.TokenFamily, int64, error)
}

// CacheService is the fast store, authoritative for every rotation decision.
type CacheService interface {
	io.Closer
	CreateFamily(ctx context.Context, fam *md.TokenFamily, ttl time.Duration) error
	GetFamily(ctx context.Context, familyID uuid.UUID) (*md.TokenFamily, error)
	AdvanceFamily(
		ctx context.Context,
		familyID uuid.UUID,
		presentedIndex int,
		newTokenID uuid.UUID,
		revokeReason string,
	) (int, error)
	RevokeFamily(ctx context.Context, familyID, userID uuid.UUID, reason string) error
	ListUserFamilies(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	SetTokenMeta(ctx context.Context, meta *md.TokenMeta, ttl time.Duration) error
	GetTokenMeta(ctx context.Context, tokenID uuid.UUID) (*md.TokenMeta, error)
}

type Controller struct {
	au             jwt.Port
	repo           AppRepo
	cache          CacheService
	familyLifetime time.Duration
}

func New(au jwt.Port, repo AppRepo, cache CacheService, conf config.Config) *Controller {
	return &Controller{
		au:             au,
		repo:           repo,
		cache:          cache,
		familyLifetime: conf.Token.FamilyLifetime,
	}
}
