package privacypass

import (
	"errors"
)

var (
	// ErrInvalidTokenChallengeSize is returned when an encoded challenge is
	// shorter than the minimum size, or when bytes remain after all fields
	// have been consumed
	ErrInvalidTokenChallengeSize = errors.New("invalid token challenge size")

	// ErrInvalidTokenChallenge is returned when a length-prefixed field runs
	// past the end of the buffer, or when a text field is not valid ASCII
	ErrInvalidTokenChallenge = errors.New("invalid token challenge")

	// ErrInvalidRedemptionContext is returned when the redemption context is
	// neither empty nor exactly 32 bytes
	ErrInvalidRedemptionContext = errors.New("invalid redemption context")

	// ErrInvalidIssuer is returned when the issuer name cannot be encoded as
	// an ASCII blob with a 16-bit length prefix
	ErrInvalidIssuer = errors.New("invalid issuer")

	// ErrInvalidOriginInfo is returned when the comma-joined origin info
	// cannot be encoded as an ASCII blob with a 16-bit length prefix
	ErrInvalidOriginInfo = errors.New("invalid origin info")
)
