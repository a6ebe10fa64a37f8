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

func CreateRateSheet(repo *repositories.RateRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateRateSheetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.ErrMsgInvalidBody, http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.RateListName) == "" {
			common.RespondError(w, initTime, nil, "rate_list_name is required", http.StatusBadRequest)
			return
		}

		effective, err := common.ParseDate(req.EffectiveDate)
		if err != nil {
			common.RespondError(w, initTime, nil, "Invalid effective_date", http.StatusBadRequest)
			return
		}
		expiry, err := common.ParseDate(req.ExpiryDate)
		if err != nil {
			common.RespondError(w, initTime, nil, "Invalid expiry_date", http.StatusBadRequest)
			return
		}

		sheet := &entities.RateSheet{
			RateListName:  strings.TrimSpace(req.RateListName),
			RateType:      req.RateType,
			EffectiveDate: effective,
			ExpiryDate:    expiry,
		}
		if err := repo.InsertSheet(r.Context(), sheet); err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Rate sheet created", sheet, http.StatusCreated)
	}
}

func ListRateSheets(repo *repositories.RateRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		sheets, err := repo.ListSheets(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", sheets)
	}
}

func AddRateItem(repo *repositories.RateRepository, cache *common.CacheService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AddRateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.ErrMsgInvalidBody, http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.ItemName) == "" {
			common.RespondError(w, initTime, nil, "item_name is required", http.StatusBadRequest)
			return
		}

		item := &entities.RateItem{
			RateListName:  chi.URLParam(r, "rate_list_name"),
			ItemType:      req.ItemType,
			ItemName:      strings.TrimSpace(req.ItemName),
			Unit:          req.Unit,
			RegularRate:   req.RegularRate,
			OTRate:        req.OTRate,
			GLCodeRevenue: req.GLCodeRevenue,
		}
		if err := repo.InsertItem(r.Context(), item); err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, http.StatusInternalServerError)
			return
		}
		cache.Delete(string(constants.CachePrefixRateSheet) + item.RateListName)

		common.RespondSuccess(w, initTime, "Rate item added", item, http.StatusCreated)
	}
}

// ListRateItems serves a sheet's line items. Rate sheets change rarely
// and feed ticket pricing lookups, so the read is cached.
func ListRateItems(repo *repositories.RateRepository, cache *common.CacheService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		name := chi.URLParam(r, "rate_list_name")
		val, err := cache.GetOrSet(string(constants.CachePrefixRateSheet)+name, 5*time.Minute, func() (any, error) {
			return repo.ListItems(r.Context(), name)
		})
		if err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", val.([]entities.RateItem))
	}
}
