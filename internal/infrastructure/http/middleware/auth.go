package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/communehq/commune/internal/application/ports"
	domerrors "github.com/communehq/commune/internal/domain/errors"
)

// AuthValidator authenticates a request: it validates the bearer token and
// re-confirms the embedded user still exists before letting the request
// through with the user id in context (see UserFromContext).
type AuthValidator struct {
	issuer ports.TokenIssuer
	users  ports.UserRepository
	log    zerolog.Logger
}

func NewAuthValidator(issuer ports.TokenIssuer, users ports.UserRepository, log zerolog.Logger) *AuthValidator {
	return &AuthValidator{issuer: issuer, users: users, log: log}
}

func (m *AuthValidator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			writeUnauthorized(w)
			return
		}
		userID, err := m.issuer.Validate(strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			// Expiry vs malformed is a server-side distinction only; the
			// client sees one answer.
			if errors.Is(err, domerrors.ErrTokenExpired) {
				m.log.Debug().Str("path", r.URL.Path).Msg("expired token")
			}
			writeUnauthorized(w)
			return
		}
		user, err := m.users.GetByID(r.Context(), userID)
		if err != nil {
			m.log.Error().Err(err).Msg("auth user lookup")
			writeServerError(w)
			return
		}
		if user == nil {
			writeUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), userID)))
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}

func writeServerError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "Server error"})
}
