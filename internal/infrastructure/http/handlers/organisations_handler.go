package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/communehq/commune/internal/application/org"
	"github.com/communehq/commune/internal/domain"
	domerrors "github.com/communehq/commune/internal/domain/errors"
	"github.com/communehq/commune/internal/infrastructure/http/middleware"
)

// OrganisationsHandler handles /api/organisations/*.
type OrganisationsHandler struct {
	create    *org.Create
	query     *org.Query
	addMember *org.AddMember
	validate  *validator.Validate
	log       zerolog.Logger
}

func NewOrganisationsHandler(create *org.Create, query *org.Query, addMember *org.AddMember, log zerolog.Logger) *OrganisationsHandler {
	return &OrganisationsHandler{
		create:    create,
		query:     query,
		addMember: addMember,
		validate:  newValidator(),
		log:       log,
	}
}

// orgPayload is the JSON shape for an organisation.
type orgPayload struct {
	OrgID       string `json:"orgId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func toOrgPayload(o *domain.Organisation) orgPayload {
	return orgPayload{OrgID: o.ID, Name: o.Name, Description: o.Description}
}

// List returns every organisation the caller belongs to. No organisations
// is a 404, not an empty list.
func (h *OrganisationsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserFromContext(r.Context())
	if userID == "" {
		writeErr(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	orgs, err := h.query.ListForUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domerrors.ErrNoOrganisations) {
			writeErr(w, http.StatusNotFound, "This user has not created or does not belong to any organisation")
			return
		}
		h.log.Error().Err(err).Msg("list organisations failed")
		writeErr(w, http.StatusInternalServerError, "Server error")
		return
	}
	items := make([]orgPayload, 0, len(orgs))
	for _, o := range orgs {
		items = append(items, toOrgPayload(o))
	}
	writeSuccess(w, http.StatusOK, "Organisations retrieved successfully", map[string]interface{}{
		"organisations": items,
	})
}

// Get returns one organisation, to its creator only. Not-found and
// not-owned share one response body.
func (h *OrganisationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserFromContext(r.Context())
	if userID == "" {
		writeErr(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	orgID := chi.URLParam(r, "orgId")
	if orgID == "" {
		writeErr(w, http.StatusBadRequest, "Organisation ID is required")
		return
	}
	organisation, err := h.query.GetByID(r.Context(), orgID, userID)
	if err != nil {
		if errors.Is(err, domerrors.ErrOrgNotFound) {
			writeErr(w, http.StatusNotFound, "Organisation not found")
			return
		}
		h.log.Error().Err(err).Msg("get organisation failed")
		writeErr(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeSuccess(w, http.StatusOK, "Organisation retrieved successfully", toOrgPayload(organisation))
}

// Create makes a new organisation owned by the caller.
func (h *OrganisationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserFromContext(r.Context())
	if userID == "" {
		writeErr(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var body struct {
		Name        string `json:"name" validate:"required,alpha"`
		Description string `json:"description" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeFieldErrors(w, fieldErrors(err))
		return
	}
	result, err := h.create.Execute(r.Context(), org.CreateInput{
		UserID:      userID,
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("create organisation failed")
		writeErr(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeSuccess(w, http.StatusCreated, "Organisation created successfully", toOrgPayload(result.Organisation))
}

// AddMember adds an existing user to an organisation. The route is mounted
// outside the auth gate, so no token is required.
func (h *OrganisationsHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "orgId")
	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if orgID == "" || body.UserID == "" {
		writeErr(w, http.StatusBadRequest, "Organisation ID and userId are required")
		return
	}
	err := h.addMember.Execute(r.Context(), org.AddMemberInput{OrgID: orgID, UserID: body.UserID})
	if err != nil {
		switch {
		case errors.Is(err, domerrors.ErrOrgNotFound):
			writeErr(w, http.StatusNotFound, "Organisation not found")
		case errors.Is(err, domerrors.ErrAlreadyMember):
			writeErr(w, http.StatusUnprocessableEntity, "User already exists in this organisation")
		case errors.Is(err, domerrors.ErrUserNotFound):
			writeErr(w, http.StatusBadRequest, "User not found")
		default:
			h.log.Error().Err(err).Msg("add member failed")
			writeErr(w, http.StatusInternalServerError, "Server error")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "User added to organisation successfully",
	})
}

// ListMembers returns the membership of an organisation the caller belongs
// to.
func (h *OrganisationsHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserFromContext(r.Context())
	if userID == "" {
		writeErr(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	orgID := chi.URLParam(r, "orgId")
	if orgID == "" {
		writeErr(w, http.StatusBadRequest, "Organisation ID is required")
		return
	}
	members, err := h.query.ListMembers(r.Context(), orgID, userID)
	if err != nil {
		if errors.Is(err, domerrors.ErrOrgNotFound) {
			writeErr(w, http.StatusNotFound, "Organisation not found")
			return
		}
		h.log.Error().Err(err).Msg("list members failed")
		writeErr(w, http.StatusInternalServerError, "Server error")
		return
	}
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.UserID)
	}
	writeSuccess(w, http.StatusOK, "Members retrieved successfully", map[string]interface{}{
		"orgId": orgID,
		"users": ids,
	})
}
