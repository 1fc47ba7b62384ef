// Package privacypass implements the TokenChallenge structure of the Privacy
// Pass issuance protocol as defined in RFC 9577, together with its canonical
// binary encoding. The encoding is byte-exact: all integers are big-endian
// and every variable-length field carries a fixed-width length prefix, so two
// compliant peers always agree on the serialized form.
//
// The package is a leaf. It performs no I/O, keeps no state and never
// validates the *content* of issuer or origin names; callers that need
// server-name syntax checks can use the names subpackage.
package privacypass

import (
	"bytes"
	"encoding/base64"
	"slices"
)

// Registered token types, from the IANA registry established by RFC 9578.
// The codec itself treats the token type as opaque and never restricts it.
const (
	// TokenTypeVOPRF identifies VOPRF(P-384, SHA-384) privately verifiable
	// tokens
	TokenTypeVOPRF uint16 = 0x0001

	// TokenTypeBlindRSA identifies blind RSA (2048-bit) publicly verifiable
	// tokens
	TokenTypeBlindRSA uint16 = 0x0002
)

// RedemptionContextSize is the only non-zero length allowed for a redemption
// context
const RedemptionContextSize = 32

// TokenChallenge identifies the issuer a client should request a token from
// and scopes where the issued token may be redeemed. Values are immutable
// once constructed and safe to share across goroutines.
type TokenChallenge struct {
	tokenType         uint16
	issuer            string
	redemptionContext []byte
	originInfo        []string
}

// NewTokenChallenge creates a token challenge from the given fields. It fails
// with ErrInvalidRedemptionContext unless the redemption context is empty or
// exactly 32 bytes. Issuer and origin names are stored verbatim; validating
// their server-name syntax is the caller's responsibility (see the names
// subpackage), not a guarantee of this codec.
func NewTokenChallenge(tokenType uint16, issuer string, redemptionContext []byte, originInfo []string) (TokenChallenge, error) {
	if len(redemptionContext) != 0 && len(redemptionContext) != RedemptionContextSize {
		return TokenChallenge{}, ErrInvalidRedemptionContext
	}

	return TokenChallenge{
		tokenType:         tokenType,
		issuer:            issuer,
		redemptionContext: append([]byte(nil), redemptionContext...),
		originInfo:        append([]string(nil), originInfo...),
	}, nil
}

// TokenType returns the token type identifier
func (c TokenChallenge) TokenType() uint16 {
	return c.tokenType
}

// Issuer returns the issuer name
func (c TokenChallenge) Issuer() string {
	return c.issuer
}

// RedemptionContext returns a copy of the redemption context, which is either
// empty or exactly 32 bytes
func (c TokenChallenge) RedemptionContext() []byte {
	return append([]byte(nil), c.redemptionContext...)
}

// OriginInfo returns a copy of the ordered origin name list
func (c TokenChallenge) OriginInfo() []string {
	return append([]string(nil), c.originInfo...)
}

// Equal reports whether two token challenges are equal field by field
func (c TokenChallenge) Equal(other TokenChallenge) bool {
	return c.tokenType == other.tokenType &&
		c.issuer == other.issuer &&
		bytes.Equal(c.redemptionContext, other.redemptionContext) &&
		slices.Equal(c.originInfo, other.originInfo)
}

// MarshalText encodes the challenge in unpadded base64url, the form used by
// the PrivateToken WWW-Authenticate challenge attribute
func (c TokenChallenge) MarshalText() ([]byte, error) {
	raw, err := c.Marshal()
	if err != nil {
		return nil, err
	}

	text := make([]byte, base64.RawURLEncoding.EncodedLen(len(raw)))
	base64.RawURLEncoding.Encode(text, raw)
	return text, nil
}

// UnmarshalText decodes a challenge from its unpadded base64url form
func (c *TokenChallenge) UnmarshalText(text []byte) error {
	raw, err := base64.RawURLEncoding.DecodeString(string(text))
	if err != nil {
		return ErrInvalidTokenChallenge
	}

	challenge, err := UnmarshalTokenChallenge(raw)
	if err != nil {
		return err
	}

	*c = challenge
	return nil
}
