package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fieldflow/backoffice/internal/common"
	"fieldflow/backoffice/internal/constants"
	"fieldflow/backoffice/internal/models/dtos"
	gormModels "fieldflow/backoffice/internal/models/gorm"
)

type profileSaver interface {
	Save(ctx context.Context, req dtos.CreateImportProfileRequest) (*gormModels.ImportProfile, error)
	List(ctx context.Context) ([]gormModels.ImportProfile, error)
}

func CreateImportProfile(svc profileSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateImportProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.ErrMsgInvalidBody, http.StatusBadRequest)
			return
		}

		profile, err := svc.Save(r.Context(), req)
		if err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, statusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Import profile saved", profile, http.StatusCreated)
	}
}

func ListImportProfiles(svc profileSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		profiles, err := svc.List(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, statusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", profiles)
	}
}
