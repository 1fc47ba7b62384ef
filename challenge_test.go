package privacypass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenChallengeRedemptionContext(t *testing.T) {
	for _, size := range []int{0, RedemptionContextSize} {
		challenge, err := NewTokenChallenge(1, "issuer.example", make([]byte, size), nil)
		require.NoError(t, err, "context length %d", size)
		assert.Len(t, challenge.RedemptionContext(), size)
	}

	for _, size := range []int{1, 31, 33, 255} {
		_, err := NewTokenChallenge(1, "issuer.example", make([]byte, size), nil)
		assert.ErrorIs(t, err, ErrInvalidRedemptionContext, "context length %d", size)
	}
}

func TestNewTokenChallengeStoresFieldsVerbatim(t *testing.T) {
	// Construction performs no name-syntax validation; that is the caller's
	// job (see the names subpackage).
	challenge, err := NewTokenChallenge(7, "NOT a hostname", nil, []string{"neither, is this"})
	require.NoError(t, err)
	assert.Equal(t, "NOT a hostname", challenge.Issuer())
	assert.Equal(t, []string{"neither, is this"}, challenge.OriginInfo())
}

func TestTokenChallengeImmutability(t *testing.T) {
	redemptionContext := make([]byte, RedemptionContextSize)
	originInfo := []string{"origin.example"}

	challenge, err := NewTokenChallenge(1, "issuer.example", redemptionContext, originInfo)
	require.NoError(t, err)

	// Mutating the constructor arguments must not affect the challenge.
	redemptionContext[0] = 0xaa
	originInfo[0] = "changed.example"
	assert.Equal(t, byte(0), challenge.RedemptionContext()[0])
	assert.Equal(t, []string{"origin.example"}, challenge.OriginInfo())

	// Mutating accessor results must not affect the challenge either.
	challenge.RedemptionContext()[0] = 0xbb
	challenge.OriginInfo()[0] = "changed.example"
	assert.Equal(t, byte(0), challenge.RedemptionContext()[0])
	assert.Equal(t, []string{"origin.example"}, challenge.OriginInfo())
}

func TestTokenChallengeEqual(t *testing.T) {
	base, err := NewTokenChallenge(1, "issuer.example", make([]byte, RedemptionContextSize), []string{"origin.example"})
	require.NoError(t, err)

	same, err := NewTokenChallenge(1, "issuer.example", make([]byte, RedemptionContextSize), []string{"origin.example"})
	require.NoError(t, err)
	assert.True(t, base.Equal(same))
	assert.True(t, same.Equal(base))

	cases := []struct {
		name  string
		other TokenChallenge
	}{
		{name: "token type", other: mustChallenge(t, 2, "issuer.example", make([]byte, RedemptionContextSize), []string{"origin.example"})},
		{name: "issuer", other: mustChallenge(t, 1, "other.example", make([]byte, RedemptionContextSize), []string{"origin.example"})},
		{name: "redemption context", other: mustChallenge(t, 1, "issuer.example", nil, []string{"origin.example"})},
		{name: "origin info", other: mustChallenge(t, 1, "issuer.example", make([]byte, RedemptionContextSize), []string{"other.example"})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, base.Equal(tc.other))
		})
	}
}

func TestTokenChallengeTextRoundTrip(t *testing.T) {
	challenge, err := NewTokenChallenge(1, "abc", nil, []string{"d", "e", "f"})
	require.NoError(t, err)

	text, err := challenge.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "AAEAA2FiYwAABWQsZSxm", string(text))

	var parsed TokenChallenge
	require.NoError(t, parsed.UnmarshalText(text))
	assert.True(t, challenge.Equal(parsed))
}

func TestTokenChallengeUnmarshalTextRejectsBadInput(t *testing.T) {
	var challenge TokenChallenge

	// Not base64url.
	err := challenge.UnmarshalText([]byte("!!!"))
	assert.ErrorIs(t, err, ErrInvalidTokenChallenge)

	// Valid base64url, but the payload is shorter than a challenge.
	err = challenge.UnmarshalText([]byte("AAEA"))
	assert.ErrorIs(t, err, ErrInvalidTokenChallengeSize)
}

func mustChallenge(t *testing.T, tokenType uint16, issuer string, redemptionContext []byte, originInfo []string) TokenChallenge {
	t.Helper()
	challenge, err := NewTokenChallenge(tokenType, issuer, redemptionContext, originInfo)
	require.NoError(t, err)
	return challenge
}
