package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("test-secret", 0)

	tok, err := issuer.Issue("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestIssueWithoutSecret(t *testing.T) {
	issuer := NewIssuer("", 0)

	_, err := issuer.Issue("alice@example.com")
	require.ErrorIs(t, err, ErrNoSecret)

	_, err = issuer.Verify("whatever")
	require.ErrorIs(t, err, ErrNoSecret)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer("secret-one", 0)
	other := NewIssuer("secret-two", 0)

	tok, err := issuer.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = other.Verify(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := NewIssuer("test-secret", 0)

	testCases := []struct {
		name string
		tok  string
	}{
		{name: "empty", tok: ""},
		{name: "not a jwt", tok: "garbage"},
		{name: "truncated", tok: "aaa.bbb"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := issuer.Verify(tc.tok)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)

	tok, err := issuer.Issue("alice@example.com")
	require.NoError(t, err)

	_, err = issuer.Verify(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAcceptsUnexpired(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	tok, err := issuer.Issue("alice@example.com")
	require.NoError(t, err)

	email, err := issuer.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}
