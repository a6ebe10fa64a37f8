package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"fieldflow/backoffice/internal/common"
	"fieldflow/backoffice/internal/constants"
	"fieldflow/backoffice/internal/db/repositories"
	"fieldflow/backoffice/internal/models/dtos"
	"fieldflow/backoffice/internal/models/entities"
)

func CreateClient(repo *repositories.ClientRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, constants.ErrMsgInvalidBody, http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.ClientName) == "" {
			common.RespondError(w, initTime, nil, "client_name is required", http.StatusBadRequest)
			return
		}

		client := &entities.Client{
			ClientName:   strings.TrimSpace(req.ClientName),
			Email:        req.Email,
			Phone:        req.Phone,
			Address:      req.Address,
			BillingTerms: req.BillingTerms,
		}
		if err := repo.InsertClient(r.Context(), client); err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Client created", client, http.StatusCreated)
	}
}

func ListClients(repo *repositories.ClientRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		clients, err := repo.ListAll(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", clients)
	}
}
