package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("secret", "schoolconnect", time.Hour)

	token, err := m.Issue("user-1", 0)
	require.NoError(t, err)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestIssueUsesDefaultTTL(t *testing.T) {
	m := NewManager("secret", "", 0)
	assert.Equal(t, DefaultTTL, m.TTL())

	fixed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	token, err := m.Issue("user-1", 0)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = gojwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(DefaultTTL), claims.ExpiresAt.Time.UTC())
}

func TestVerifyExpired(t *testing.T) {
	m := NewManager("secret", "", time.Hour)

	token, err := m.IssueAt("user-1", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewManager("secret", "", time.Hour).Issue("user-1", 0)
	require.NoError(t, err)

	_, err = NewManager("other", "", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerifyRejectsGarbageAndOtherAlgorithms(t *testing.T) {
	m := NewManager("secret", "", time.Hour)

	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrTokenMalformed)

	// HS512 with the right key is still refused
	claims := Claims{RegisteredClaims: gojwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	other, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = m.Verify(other)
	assert.ErrorIs(t, err, ErrTokenMalformed)

	// alg=none
	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Verify(unsigned)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerifyRequiresSubjectAndExpiry(t *testing.T) {
	m := NewManager("secret", "", time.Hour)

	noSubject, err := m.IssueAt("", time.Now().Add(time.Hour))
	require.NoError(t, err)
	_, err = m.Verify(noSubject)
	assert.ErrorIs(t, err, ErrTokenMalformed)

	noExpiry, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{Subject: "user-1"}).
		SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = m.Verify(noExpiry)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
