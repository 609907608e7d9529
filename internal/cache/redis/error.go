package redis

import "errors"

// ErrNotFound is returned when a key is absent. It is never used for
// connectivity failures, which are wrapped separately.
var ErrNotFound = errors.New("not found in cache")

// ErrFamilyRevoked is returned by the advance script when the family latch
// is already set.
var ErrFamilyRevoked = errors.New("family is revoked")

// ErrIndexConflict is returned by the advance script when the presented
// token index is not the live one. The script has already revoked the
// family by the time this error is observed.
var ErrIndexConflict = errors.New("token index conflict")
