// internal/handler/invitation.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/middleware"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/service"
)

type InvitationHandler struct {
	invitationService *service.InvitationService
}

func NewInvitationHandler(invitationService *service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invitationService: invitationService}
}

type InvitationResponse struct {
	BaseResponse
	Invitation *model.Invitation `json:"invitation"`
}

func (h *InvitationHandler) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	companyID, err := uuid.Parse(chi.URLParam(r, "companyID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company id")
		return
	}

	var input service.CreateInvitationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	invitation, err := h.invitationService.CreateInvitation(r.Context(), companyID, userID, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, InvitationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Invitation:   invitation,
	})
}

type ResolveInvitationRequest struct {
	Action service.ResolveAction `json:"action"`
}

type ResolveInvitationResponse struct {
	BaseResponse
	MembershipCreated bool `json:"membership_created"`
	PreAccepted       bool `json:"pre_accepted"`
}

// ResolveInvitation accepts or rejects an invitation. Unauthenticated
// accepts are parked as pre-accepted and completed at first login.
func (h *InvitationHandler) ResolveInvitation(w http.ResponseWriter, r *http.Request) {
	invitationID, err := uuid.Parse(chi.URLParam(r, "invitationID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid invitation id")
		return
	}

	var req ResolveInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	actingUserID, _ := middleware.UserID(r.Context())

	result, err := h.invitationService.ResolveInvitation(r.Context(), invitationID, req.Action, actingUserID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ResolveInvitationResponse{
		BaseResponse:      BaseResponse{Ok: true},
		MembershipCreated: result.MembershipCreated,
		PreAccepted:       result.PreAccepted,
	})
}
