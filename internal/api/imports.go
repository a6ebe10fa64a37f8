package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"fieldflow/backoffice/internal/auth"
	"fieldflow/backoffice/internal/common"
	"fieldflow/backoffice/internal/constants"
	"fieldflow/backoffice/internal/importer"
	"fieldflow/backoffice/internal/logging"
	"fieldflow/backoffice/internal/models/dtos"
)

const maxUploadBytes = 32 << 20

type importRunner interface {
	Preview(ctx context.Context, profileName string, file io.Reader, format importer.Format) ([]dtos.ImportGroupPreview, error)
	Commit(ctx context.Context, profileName string, file io.Reader, format importer.Format) (*dtos.ImportRunResult, error)
}

func formatForFilename(name string) (importer.Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return importer.FormatCSV, true
	case ".xlsx":
		return importer.FormatXLSX, true
	default:
		return "", false
	}
}

func uploadedTable(w http.ResponseWriter, r *http.Request, initTime time.Time) (io.ReadCloser, string, importer.Format, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		common.RespondError(w, initTime, nil, "Expected multipart form upload", http.StatusBadRequest)
		return nil, "", "", false
	}

	profileName := r.FormValue("profile")
	if profileName == "" {
		common.RespondError(w, initTime, nil, "profile form field is required", http.StatusBadRequest)
		return nil, "", "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		common.RespondError(w, initTime, nil, "file form field is required", http.StatusBadRequest)
		return nil, "", "", false
	}

	format, ok := formatForFilename(header.Filename)
	if !ok {
		file.Close()
		common.RespondError(w, initTime, nil, "Unsupported file type; upload .csv or .xlsx", http.StatusBadRequest)
		return nil, "", "", false
	}

	return file, profileName, format, true
}

// PreviewImport decodes the upload through a saved profile and returns
// the draft tickets a commit would create, without writing anything.
func PreviewImport(svc importRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		file, profileName, format, ok := uploadedTable(w, r, initTime)
		if !ok {
			return
		}
		defer file.Close()

		previews, err := svc.Preview(r.Context(), profileName, file, format)
		if err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, statusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "", previews)
	}
}

// RunImport commits the upload as draft tickets. A mid-run failure
// still reports the groups that landed; they are not rolled back.
func RunImport(svc importRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.ErrMsgUnauthorized, http.StatusUnauthorized)
			return
		}

		file, profileName, format, ok := uploadedTable(w, r, initTime)
		if !ok {
			return
		}
		defer file.Close()

		result, err := svc.Commit(r.Context(), profileName, file, format)
		if err != nil {
			if result != nil && result.GroupsCommitted > 0 {
				logging.Warn("Import run partially committed",
					"profile", profileName,
					"committed", result.GroupsCommitted,
					"failed_group", result.FailedGroup,
				)
				resp := dtos.APIResponse{
					Status:       string(constants.APIStatusError),
					Message:      err.Error(),
					ResponseTime: common.GetResponseTime(initTime),
					Data:         result,
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(resp)
				return
			}
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, statusForError(err))
			return
		}

		common.RespondSuccess(w, initTime, "Import committed", result, http.StatusCreated)
	}
}
