package privacypass

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/cryptobyte"
)

// minChallengeSize is the encoded size of a challenge with every
// variable-length field empty: tokenType (2) + issuerLen (2) +
// redemptionContextLen (1) + originInfoLen (2).
const minChallengeSize = 7

// maxBlobSize is the largest blob a 16-bit length prefix can describe
const maxBlobSize = 1<<16 - 1

// UnmarshalTokenChallenge parses an encoded token challenge. The input is
// untrusted: every declared length is checked against the remaining buffer,
// and the declared lengths must account for the whole input exactly, so a
// truncated buffer and one with trailing garbage are both rejected. The
// origin info blob is split on literal commas; an empty blob yields an empty
// origin list.
func UnmarshalTokenChallenge(data []byte) (TokenChallenge, error) {
	if len(data) < minChallengeSize {
		return TokenChallenge{}, ErrInvalidTokenChallengeSize
	}

	var (
		tokenType                uint16
		issuer, context, origins cryptobyte.String
	)
	s := cryptobyte.String(data)
	if !s.ReadUint16(&tokenType) ||
		!s.ReadUint16LengthPrefixed(&issuer) ||
		!s.ReadUint8LengthPrefixed(&context) ||
		!s.ReadUint16LengthPrefixed(&origins) {
		return TokenChallenge{}, ErrInvalidTokenChallenge
	}
	if !s.Empty() {
		return TokenChallenge{}, ErrInvalidTokenChallengeSize
	}

	if !isASCII(string(issuer)) || !isASCII(string(origins)) {
		return TokenChallenge{}, ErrInvalidTokenChallenge
	}
	if len(context) != 0 && len(context) != RedemptionContextSize {
		return TokenChallenge{}, ErrInvalidRedemptionContext
	}

	challenge := TokenChallenge{
		tokenType:         tokenType,
		issuer:            string(issuer),
		redemptionContext: append([]byte(nil), context...),
	}
	if len(origins) > 0 {
		challenge.originInfo = strings.Split(string(origins), ",")
	}
	return challenge, nil
}

// Marshal serializes the challenge into its canonical binary form. It fails
// with ErrInvalidIssuer or ErrInvalidOriginInfo when the issuer or the
// comma-joined origin info is not ASCII or does not fit its 16-bit length
// prefix. Origin names are joined with a literal comma and no escaping; a
// name containing a comma is indistinguishable from two names after a round
// trip, a limitation of the wire format itself.
func (c TokenChallenge) Marshal() ([]byte, error) {
	if !isASCII(c.issuer) || len(c.issuer) > maxBlobSize {
		return nil, ErrInvalidIssuer
	}
	originBlob := strings.Join(c.originInfo, ",")
	if !isASCII(originBlob) || len(originBlob) > maxBlobSize {
		return nil, ErrInvalidOriginInfo
	}

	var b cryptobyte.Builder
	b.AddUint16(c.tokenType)
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes([]byte(c.issuer))
	})
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(c.redemptionContext)
	})
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes([]byte(originBlob))
	})

	raw, err := b.Bytes()
	if err != nil {
		panic(fmt.Sprintf("privacypass: token challenge encoding failed: %v", err))
	}
	if want := minChallengeSize + len(c.issuer) + len(c.redemptionContext) + len(originBlob); len(raw) != want {
		panic(fmt.Sprintf("privacypass: encoded token challenge is %d bytes, want %d", len(raw), want))
	}
	return raw, nil
}

// isASCII reports whether s contains only 7-bit ASCII bytes
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
