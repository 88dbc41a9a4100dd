package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/communehq/commune/internal/application/ports"
	domerrors "github.com/communehq/commune/internal/domain/errors"
)

// DefaultAccessExpiry is the token lifetime in seconds (1 hour).
const DefaultAccessExpiry = 3600

// TokenIssuer implements ports.TokenIssuer with HS256 and a shared secret.
type TokenIssuer struct {
	secret        []byte
	expirySeconds int64
	now           func() time.Time
}

type accessClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

func NewTokenIssuer(secret string, expirySeconds int64) *TokenIssuer {
	if expirySeconds <= 0 {
		expirySeconds = DefaultAccessExpiry
	}
	return &TokenIssuer{secret: []byte(secret), expirySeconds: expirySeconds, now: time.Now}
}

func (t *TokenIssuer) Issue(userID string) (string, error) {
	now := t.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(t.expirySeconds) * time.Second)),
		},
		UserID: userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenIssuer) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domerrors.ErrTokenExpired
		}
		return "", domerrors.ErrTokenInvalid
	}
	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", domerrors.ErrTokenInvalid
	}
	return claims.UserID, nil
}

var _ ports.TokenIssuer = (*TokenIssuer)(nil)
