package dto

import (
	"time"

	"github.com/google/uuid"
)

type RefreshIssueResult struct {
	Token      string    `json:"token"`
	FamilyID   uuid.UUID `json:"familyId"`
	TokenID    uuid.UUID `json:"tokenId"`
	TokenIndex int       `json:"tokenIndex"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

type RotateResult struct {
	AccessToken           string    `json:"accessToken"`
	RefreshToken          string    `json:"refreshToken"`
	TokenType             string    `json:"tokenType"`
	AccessTokenTTLSeconds int64     `json:"accessTokenTtlSeconds"`
	FamilyID              uuid.UUID `json:"familyId"`
}

// ValidationResult reports validity without mutating any state. Err carries
// the classification for invalid tokens; infrastructure failures are returned
// as ordinary errors by the controller instead.
type ValidationResult struct {
	Valid      bool      `json:"valid"`
	UserID     uuid.UUID `json:"userId,omitempty"`
	DeviceID   string    `json:"deviceId,omitempty"`
	FamilyID   uuid.UUID `json:"familyId,omitempty"`
	TokenIndex int       `json:"tokenIndex,omitempty"`
	IsReplay   bool      `json:"isReplay"`
	Err        error     `json:"-"`
}
