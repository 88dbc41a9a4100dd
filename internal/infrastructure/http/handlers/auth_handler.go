package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/communehq/commune/internal/application/auth"
	"github.com/communehq/commune/internal/domain"
	domerrors "github.com/communehq/commune/internal/domain/errors"
	"github.com/communehq/commune/internal/infrastructure/http/middleware"
)

// AuthHandler handles /auth/register and /auth/login.
type AuthHandler struct {
	register *auth.Register
	login    *auth.Login
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthHandler(register *auth.Register, login *auth.Login, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		validate: newValidator(),
		log:      log,
	}
}

// userPayload is the profile shape returned by auth and user endpoints.
// The password hash never leaves the server.
type userPayload struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func toUserPayload(u *domain.User) userPayload {
	return userPayload{
		UserID:    u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		FirstName string `json:"firstName" validate:"required"`
		LastName  string `json:"lastName" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required"`
		Phone     string `json:"phone" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeFieldErrors(w, fieldErrors(err))
		return
	}
	result, err := h.register.Execute(r.Context(), auth.RegisterInput{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
		Phone:     body.Phone,
	})
	if err != nil {
		AuditLog(h.log, r, "user.register", "", false, err.Error())
		middleware.RecordAuthAttempt("register", false)
		if errors.Is(err, domerrors.ErrUserExists) {
			writeErr(w, http.StatusConflict, "A user with this email address already exists")
			return
		}
		h.log.Error().Err(err).Msg("register failed")
		writeStatusErr(w, http.StatusInternalServerError, "Internal server error", "Registration unsuccessful")
		return
	}
	AuditLog(h.log, r, "user.register", result.User.ID, true, "")
	middleware.RecordAuthAttempt("register", true)
	writeSuccess(w, http.StatusCreated, "Registration successful", map[string]interface{}{
		"accessToken":  result.AccessToken,
		"organisation": result.Organisation.Name,
		"user":         toUserPayload(result.User),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeFieldErrors(w, fieldErrors(err))
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		AuditLog(h.log, r, "user.login", "", false, err.Error())
		middleware.RecordAuthAttempt("login", false)
		if errors.Is(err, domerrors.ErrInvalidCredentials) {
			// One message for both unknown email and bad password.
			writeStatusErr(w, http.StatusUnauthorized, "Bad request", "Authentication failed")
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		writeStatusErr(w, http.StatusInternalServerError, "Internal server error", "Login unsuccessful")
		return
	}
	AuditLog(h.log, r, "user.login", result.User.ID, true, "")
	middleware.RecordAuthAttempt("login", true)
	writeSuccess(w, http.StatusOK, "Login successful", map[string]interface{}{
		"accessToken": result.AccessToken,
		"user":        toUserPayload(result.User),
	})
}
