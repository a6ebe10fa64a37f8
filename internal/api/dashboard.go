package api

import (
	"context"
	"net/http"
	"time"

	"fieldflow/backoffice/internal/common"
	"fieldflow/backoffice/internal/constants"
	"fieldflow/backoffice/internal/models/dtos"
)

type dashboardProvider interface {
	Summary(ctx context.Context) (*dtos.DashboardSummary, error)
}

// DashboardSummaryHandler serves the KPI snapshot. The service memoizes
// it, so repeated polling stays cheap.
func DashboardSummaryHandler(svc dashboardProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		summary, err := svc.Summary(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, constants.ErrMsgPersistence, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", summary)
	}
}
