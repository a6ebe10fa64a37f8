package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"fieldflow/backoffice/internal/auth"
	"fieldflow/backoffice/internal/common"
	"fieldflow/backoffice/internal/constants"
	"fieldflow/backoffice/internal/logging"
	"fieldflow/backoffice/internal/models/dtos"
)

// CreateSession opens an operator session and hands back the signed
// bearer token the frontend sends on every call.
func (h *Handlers) CreateSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.ErrMsgInvalidBody, http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.OperatorID) == "" {
			common.RespondError(w, initTime, nil, "operator_id is required", http.StatusBadRequest)
			return
		}

		session, err := h.deps.Services.Session.CreateSession(r.Context(), req.OperatorID, req.Name)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to open session", http.StatusInternalServerError)
			return
		}

		token, err := auth.IssueToken(session.SessionID, session.OperatorID, session.ExpiresAt)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to sign token", http.StatusInternalServerError)
			return
		}

		logging.Info("Session opened", "operator_id", session.OperatorID)
		common.RespondSuccess(w, initTime, "Session created", dtos.SessionResponse{
			Token:     token,
			ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		}, http.StatusCreated)
	}
}

// DeleteSession logs the caller out.
func (h *Handlers) DeleteSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims, ok := auth.GetUserClaims(r.Context()).(*auth.SessionClaims)
		if !ok || claims == nil {
			common.RespondError(w, initTime, nil, constants.ErrMsgUnauthorized, http.StatusUnauthorized)
			return
		}

		if err := h.deps.Services.Session.DeleteSession(r.Context(), claims.SessionID); err != nil {
			common.RespondError(w, initTime, err, "Failed to close session", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Session closed", nil)
	}
}
