package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/communehq/commune/internal/application/user"
	domerrors "github.com/communehq/commune/internal/domain/errors"
	"github.com/communehq/commune/internal/infrastructure/http/middleware"
)

// UsersHandler handles /api/users/*. Requires the auth gate.
type UsersHandler struct {
	getProfile *user.GetProfile
	log        zerolog.Logger
}

func NewUsersHandler(getProfile *user.GetProfile, log zerolog.Logger) *UsersHandler {
	return &UsersHandler{getProfile: getProfile, log: log}
}

// Get returns a user's profile: your own, or that of a user you share an
// organisation with. Anyone else is indistinguishable from a missing user.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.UserFromContext(r.Context())
	if requesterID == "" {
		writeErr(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	targetID := chi.URLParam(r, "id")
	if targetID == "" {
		writeErr(w, http.StatusBadRequest, "User ID is required")
		return
	}
	target, err := h.getProfile.Execute(r.Context(), user.ProfileInput{
		RequesterID: requesterID,
		TargetID:    targetID,
	})
	if err != nil {
		if errors.Is(err, domerrors.ErrUserNotFound) {
			writeErr(w, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error().Err(err).Msg("get user failed")
		writeErr(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeSuccess(w, http.StatusOK, "User retrieved successfully", toUserPayload(target))
}
