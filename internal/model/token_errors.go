package model

import "errors"

var (
	// ErrTokenInvalid covers every decode failure: bad signature, wrong
	// algorithm, malformed structure, or elapsed expiry. Callers are not
	// supposed to branch on why a token is invalid.
	ErrTokenInvalid = errors.New("invalid or expired token")
	// ErrTokenRevoked means the token's jti is present in the blocklist.
	ErrTokenRevoked = errors.New("token has been revoked")
	// ErrBlocklistUnavailable means the revocation store could not be reached.
	// The guard fails closed on this condition instead of treating the token
	// as not revoked.
	ErrBlocklistUnavailable = errors.New("token blocklist unavailable")
)
