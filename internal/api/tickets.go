package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"fieldflow/backoffice/internal/auth"
	"fieldflow/backoffice/internal/common"
	"fieldflow/backoffice/internal/constants"
	"fieldflow/backoffice/internal/logging"
	"fieldflow/backoffice/internal/models/dtos"
	gormModels "fieldflow/backoffice/internal/models/gorm"
)

type ticketManager interface {
	CreateManual(ctx context.Context, req dtos.CreateTicketRequest) (*gormModels.FieldTicket, error)
	Get(ctx context.Context, ticketNumber string) (*gormModels.FieldTicket, error)
	ListRecent(ctx context.Context, limit int) ([]gormModels.FieldTicket, error)
	ListUnassigned(ctx context.Context, jobNumber string, start, end time.Time) ([]gormModels.FieldTicket, error)
	Approve(ctx context.Context, ticketNumber string) (*gormModels.FieldTicket, error)
	Delete(ctx context.Context, ticketNumber string) error
}

func CreateTicket(svc ticketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.ErrMsgUnauthorized, http.StatusUnauthorized)
			return
		}

		var req dtos.CreateTicketRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.ErrMsgInvalidBody, http.StatusBadRequest)
			return
		}

		ticket, err := svc.CreateManual(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, statusForError(err))
			return
		}

		logging.Info("Ticket submitted", "ticket_number", ticket.TicketNumber, "operator", claims.OperatorID())
		common.RespondSuccess(w, initTime, "Ticket created", ticket, http.StatusCreated)
	}
}

func GetTicket(svc ticketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		ticket, err := svc.Get(r.Context(), chi.URLParam(r, "ticket_number"))
		if err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgNotFound, statusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", ticket)
	}
}

// ListTickets returns recent tickets, or the unassigned tickets for a
// job and period when job_number, start, and end are all given.
func ListTickets(svc ticketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		q := r.URL.Query()

		if job := q.Get("job_number"); job != "" {
			start, err := common.ParseDate(q.Get("start"))
			if err != nil {
				common.RespondError(w, initTime, nil, "Invalid start date", http.StatusBadRequest)
				return
			}
			end, err := common.ParseDate(q.Get("end"))
			if err != nil {
				common.RespondError(w, initTime, nil, "Invalid end date", http.StatusBadRequest)
				return
			}

			tickets, err := svc.ListUnassigned(r.Context(), job, start, end)
			if err != nil {
				common.RespondError(w, initTime, err, constants.ErrMsgPersistence, statusForError(err))
				return
			}
			common.RespondSuccess(w, initTime, "", tickets)
			return
		}

		limit, _ := strconv.Atoi(q.Get("limit"))
		tickets, err := svc.ListRecent(r.Context(), limit)
		if err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, statusForError(err))
			return
		}
		common.RespondSuccess(w, initTime, "", tickets)
	}
}

func ApproveTicket(svc ticketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.ErrMsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ticket, err := svc.Approve(r.Context(), chi.URLParam(r, "ticket_number"))
		if err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgNotFound, statusForError(err))
			return
		}

		logging.Info("Ticket approval", "ticket_number", ticket.TicketNumber, "operator", claims.OperatorID())
		common.RespondSuccess(w, initTime, "Ticket approved", ticket)
	}
}

func DeleteTicket(svc ticketManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.ErrMsgUnauthorized, http.StatusUnauthorized)
			return
		}

		ticketNumber := chi.URLParam(r, "ticket_number")
		if err := svc.Delete(r.Context(), ticketNumber); err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgNotFound, statusForError(err))
			return
		}

		logging.Info("Ticket removed", "ticket_number", ticketNumber, "operator", claims.OperatorID())
		common.RespondSuccess(w, initTime, "Ticket deleted", nil)
	}
}
