package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"fieldflow/backoffice/internal/auth"
	"fieldflow/backoffice/internal/common"
	"fieldflow/backoffice/internal/logging"
	"fieldflow/backoffice/internal/models/entities"
)

type keyStore interface {
	GetStatus(ctx context.Context, key string) (*entities.ApiKey, error)
}

type sessionStore interface {
	GetSession(ctx context.Context, sessionID string) (*common.SessionData, error)
}

// AuthMiddleware resolves the caller's capability before any write path
// runs. A bearer token maps to an operator session; an X-API-Key header
// maps to a registered machine client. Requests with neither are
// rejected at the boundary.
func AuthMiddleware(keys keyStore, sessions sessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			initTime := time.Now()

			if header := r.Header.Get("Authorization"); header != "" {
				tokenString, found := strings.CutPrefix(header, "Bearer ")
				if !found {
					common.RespondError(w, initTime, nil, "Malformed Authorization header", http.StatusUnauthorized)
					return
				}

				sessionID, err := auth.ParseToken(tokenString)
				if err != nil {
					common.RespondError(w, initTime, nil, "Invalid session token", http.StatusUnauthorized)
					return
				}

				session, err := sessions.GetSession(r.Context(), sessionID)
				if err != nil {
					logging.Warn("Session lookup failed", "session_id", sessionID, "error", err)
					common.RespondError(w, initTime, nil, "Session expired or not found", http.StatusUnauthorized)
					return
				}

				claims := &auth.SessionClaims{
					OperatorIDValue: session.OperatorID,
					NameValue:       session.Name,
					SessionID:       session.SessionID,
				}
				next.ServeHTTP(w, r.WithContext(auth.SetUserClaims(r.Context(), claims)))
				return
			}

			if apiKey := r.Header.Get("X-API-Key"); apiKey != "" {
				keyRecord, err := keys.GetStatus(r.Context(), apiKey)
				if err != nil || !keyRecord.Status {
					common.RespondError(w, initTime, nil, "Invalid API key", http.StatusUnauthorized)
					return
				}

				claims := &auth.APIKeyClaims{KeyLabel: keyRecord.Label}
				next.ServeHTTP(w, r.WithContext(auth.SetUserClaims(r.Context(), claims)))
				return
			}

			common.RespondError(w, initTime, nil, "Authentication required", http.StatusUnauthorized)
		})
	}
}
