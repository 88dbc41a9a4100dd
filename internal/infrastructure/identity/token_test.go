package identity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domerrors "github.com/communehq/commune/internal/domain/errors"
)

const testSecret = "123456789zxcvbnasdfghjkqwertyuio"

func TestIssueAndValidateRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 3600)

	token, err := issuer.Issue("user-1234")
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	userID, err := issuer.Validate(token)
	require.NoError(t, err)
	require.Equal(t, "user-1234", userID)
}

func TestValidateHonoursExpiryBoundary(t *testing.T) {
	issued := time.Now()
	issuer := NewTokenIssuer(testSecret, 3600)
	issuer.now = func() time.Time { return issued }

	token, err := issuer.Issue("user-1234")
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(3599 * time.Second) }
	userID, err := issuer.Validate(token)
	require.NoError(t, err)
	require.Equal(t, "user-1234", userID)

	issuer.now = func() time.Time { return issued.Add(3601 * time.Second) }
	_, err = issuer.Validate(token)
	require.ErrorIs(t, err, domerrors.ErrTokenExpired)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 3600)

	token, err := issuer.Issue("user-1234")
	require.NoError(t, err)

	tampered := token[:len(token)-4] + "abcd"
	_, err = issuer.Validate(tampered)
	require.ErrorIs(t, err, domerrors.ErrTokenInvalid)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 3600)
	other := NewTokenIssuer("a completely different secret!!", 3600)

	token, err := other.Issue("user-1234")
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	require.ErrorIs(t, err, domerrors.ErrTokenInvalid)
}

func TestValidateRejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, 3600)

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := issuer.Validate(tok)
		require.ErrorIs(t, err, domerrors.ErrTokenInvalid, "token %q", tok)
	}
}
