package config

import "time"

const (
	// DefaultStoreTimeout bounds a single round trip to the fast store or the
	// ledger on the hot path.
	DefaultStoreTimeout = time.Second * 2
)

const (
	FamilyKeyPrefix        = "token_family:"
	TokenMetaKeyPrefix     = "token_meta:"
	UserFamiliesKeyPrefix  = "user_families:"
	FamilyRevokedKeyPrefix = "family_revoked:"
)

const (
	DefaultPage = 1
	DefaultSize = 40
	MaxListSize = 100
)
