package ctrl

import "errors"

// All of the below are terminal authentication failures for the presented
// credential: the caller must force a full re-login, never a silent retry.
var (
	// ErrInvalidToken covers signature, format and expiry failures at the
	// cryptographic layer.
	ErrInvalidToken = errors.New("invalid token")
	// ErrFamilyNotFound means the family record is absent: expired, evicted
	// or never issued. An unreachable store is not this error.
	ErrFamilyNotFound = errors.New("token family not found")
	// ErrFamilyRevoked means the family exists but has been invalidated.
	ErrFamilyRevoked = errors.New("token family revoked")
	// ErrUserMismatch means the family's owner differs from the payload
	// subject, suggesting a forged payload in a valid signature namespace.
	ErrUserMismatch = errors.New("token user mismatch")
	// ErrTokenInvalid means missing token metadata or a device mismatch.
	ErrTokenInvalid = errors.New("token is not valid")
	// ErrReplayDetected means a correctly signed, non-expired token was not
	// the live one in its chain. The family is revoked as part of handling.
	ErrReplayDetected = errors.New("token replay detected")
)

const (
	reasonReplay = "replay detected"

	triggerReplay = "replay"
	triggerManual = "manual"
	triggerBulk   = "bulk"
)
