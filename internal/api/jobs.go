package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"fieldflow/backoffice/internal/common"
	"fieldflow/backoffice/internal/constants"
	"fieldflow/backoffice/internal/db/repositories"
	"fieldflow/backoffice/internal/models/dtos"
	"fieldflow/backoffice/internal/models/entities"
)

func CreateJob(repo *repositories.JobRepository, cache *common.CacheService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Invalid JSON body", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.JobNumber) == "" || strings.TrimSpace(req.ProjectName) == "" {
			common.RespondError(w, initTime, nil, "job_number and project_name are required", http.StatusBadRequest)
			return
		}

		status := req.Status
		if status == "" {
			status = constants.JobStatusActive
		}

		job := &entities.Job{
			JobNumber:    strings.TrimSpace(req.JobNumber),
			ProjectName:  req.ProjectName,
			ClientName:   req.ClientName,
			LocationName: req.LocationName,
			LSD:          req.LSD,
			AFENumber:    req.AFENumber,
			PONumber:     req.PONumber,
			AssignedPM:   req.AssignedPM,
			Status:       status,
		}
		if err := repo.InsertJob(r.Context(), job); err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, http.StatusInternalServerError)
			return
		}
		cache.Delete(string(constants.CachePrefixActiveJobs) + "all")

		common.RespondSuccess(w, initTime, "Job created", job, http.StatusCreated)
	}
}

// ListJobs returns all jobs, or only the active ones with ?active=true.
// The active list backs the frontend's job dropdown, so it is cached
// briefly.
func ListJobs(repo *repositories.JobRepository, cache *common.CacheService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if r.URL.Query().Get("active") == "true" {
			val, err := cache.GetOrSet(string(constants.CachePrefixActiveJobs)+"all", time.Minute, func() (any, error) {
				return repo.ListActive(r.Context())
			})
			if err != nil {
				common.RespondError(w, initTime, err, constants.ErrMsgPersistence, http.StatusInternalServerError)
				return
			}
			common.RespondSuccess(w, initTime, "", val.([]entities.Job))
			return
		}

		jobs, err := repo.ListAll(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", jobs)
	}
}

func GetJob(repo *repositories.JobRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		jobNumber := chi.URLParam(r, "job_number")
		job, err := repo.FindByNumber(r.Context(), jobNumber)
		if err != nil {
			common.RespondError(w, initTime, nil, "Job not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "", job)
	}
}
