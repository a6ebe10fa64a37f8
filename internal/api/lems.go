package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
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

type lemManager interface {
	Create(ctx context.Context, req dtos.CreateLEMRequest) (*gormModels.LEM, int64, error)
	Get(ctx context.Context, lemNumber string) (*gormModels.LEM, error)
	ListRecent(ctx context.Context, limit int) ([]gormModels.LEM, error)
}

type lemExporter interface {
	Export(ctx context.Context, lemNumber string) (*bytes.Buffer, error)
}

func CreateLEM(svc lemManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.ErrMsgUnauthorized, http.StatusUnauthorized)
			return
		}

		var req dtos.CreateLEMRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.ErrMsgInvalidBody, http.StatusBadRequest)
			return
		}

		lem, linked, err := svc.Create(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, statusForError(err))
			return
		}

		logging.Info("LEM created", "lem_number", lem.LEMNumber, "linked", linked, "operator", claims.OperatorID())
		common.RespondSuccess(w, initTime, fmt.Sprintf("LEM created with %d tickets", linked), lem, http.StatusCreated)
	}
}

func GetLEM(svc lemManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		lem, err := svc.Get(r.Context(), chi.URLParam(r, "lem_number"))
		if err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgNotFound, statusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", lem)
	}
}

func ListLEMs(svc lemManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		lems, err := svc.ListRecent(r.Context(), limit)
		if err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, statusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", lems)
	}
}

// ExportLEM streams the workbook as a download and flips the LEM to
// Exported.
func ExportLEM(svc lemExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		lemNumber := chi.URLParam(r, "lem_number")
		buf, err := svc.Export(r.Context(), lemNumber)
		if err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgNotFound, statusForError(err))
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, lemNumber))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		_, _ = w.Write(buf.Bytes())
	}
}
