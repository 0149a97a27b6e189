package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateValidate_RoundTrip(t *testing.T) {
	t.Parallel()
	m := NewJWTManager("test-secret", time.Hour, "tijaniyah")

	token, err := m.Generate("user-1", "a@x.com")
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3, "compact JWS has three segments")

	principal, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", principal.UserID)
	assert.Equal(t, "a@x.com", principal.Email)
}

func TestGenerate_DistinctTokensPerIssuance(t *testing.T) {
	t.Parallel()
	m := NewJWTManager("test-secret", time.Hour, "tijaniyah")

	first, err := m.Generate("user-1", "a@x.com")
	require.NoError(t, err)
	second, err := m.Generate("user-1", "a@x.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	p1, err := m.Validate(first)
	require.NoError(t, err)
	p2, err := m.Validate(second)
	require.NoError(t, err)
	assert.Equal(t, p1.UserID, p2.UserID)
}

func TestValidate_TamperedSignature(t *testing.T) {
	t.Parallel()
	m := NewJWTManager("test-secret", time.Hour, "tijaniyah")

	token, err := m.Generate("user-1", "a@x.com")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = m.Validate(tampered)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()
	m := NewJWTManager("test-secret", -time.Minute, "tijaniyah")

	token, err := m.Generate("user-1", "a@x.com")
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.Error(t, err)
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()
	issuer := NewJWTManager("right-secret", time.Hour, "tijaniyah")
	verifier := NewJWTManager("wrong-secret", time.Hour, "tijaniyah")

	token, err := issuer.Generate("user-1", "a@x.com")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestValidate_Malformed(t *testing.T) {
	t.Parallel()
	m := NewJWTManager("test-secret", time.Hour, "tijaniyah")

	for _, tc := range []string{"", "not-a-jwt", "a.b", "a.b.c"} {
		_, err := m.Validate(tc)
		assert.Error(t, err, "token %q must not validate", tc)
	}
}
