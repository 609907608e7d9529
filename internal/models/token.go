package models

import (
	"time"

	"github.com/google/uuid"
)

// TokenFamily is the unit of trust for one login session on one device.
// The chain is append-only and exactly one token, chain[CurrentIndex],
// is redeemable at any instant.
type TokenFamily struct {
	FamilyID      uuid.UUID   `db:"family_id"      json:"familyId"`
	UserID        uuid.UUID   `db:"user_id"        json:"userId"`
	DeviceID      string      `db:"device_id"      json:"deviceId"`
	TokenChain    []uuid.UUID `db:"-"              json:"tokenChain"`
	CurrentIndex  int         `db:"current_index"  json:"currentIndex"`
	IsRevoked     bool        `db:"is_revoked"     json:"isRevoked"`
	RevokedReason string      `db:"revoked_reason" json:"revokedReason,omitempty"`
	ExpiresAt     time.Time   `db:"expires_at"     json:"expiresAt"`
	CreatedAt     time.Time   `db:"created_at"     json:"createdAt"`
	UpdatedAt     time.Time   `db:"updated_at"     json:"updatedAt"`
}

// Remaining reports how long the family stays valid past now.
func (f *TokenFamily) Remaining(now time.Time) time.Duration {
	return f.ExpiresAt.Sub(now)
}

// TokenMeta mirrors the signed payload of a single refresh token, keyed by
// token id independently of the family record. It is used to detect
// payload/family desynchronization without re-deriving from the chain.
type TokenMeta struct {
	TokenID    uuid.UUID `json:"tokenId"`
	FamilyID   uuid.UUID `json:"familyId"`
	UserID     uuid.UUID `json:"userId"`
	DeviceID   string    `json:"deviceId"`
	TokenIndex int       `json:"tokenIndex"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
