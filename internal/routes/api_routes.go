package routes

import (
	"github.com/go-chi/chi/v5"

	"fieldflow/backoffice/internal/api"
	"fieldflow/backoffice/internal/metrics"
	"fieldflow/backoffice/internal/middleware"
)

// RegisterAPIRoutes registers all API v1 routes and handlers.
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, metricsReg *metrics.MetricsRegistry, deps *api.Dependencies, handlers *api.Handlers) {

	svcs := deps.Services
	repos := deps.Repo

	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(middleware.MetricsMiddleware(metricsReg))

		// Session bootstrap is the only unauthenticated endpoint.
		v1.Post("/sessions", handlers.CreateSession())

		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(repos.Keys, svcs.Session))

			authed.Delete("/sessions", handlers.DeleteSession())

			// Master data
			authed.Post("/jobs", api.CreateJob(repos.Jobs, svcs.Cache))
			authed.Get("/jobs", api.ListJobs(repos.Jobs, svcs.Cache))
			authed.Get("/jobs/{job_number}", api.GetJob(repos.Jobs))

			authed.Post("/clients", api.CreateClient(repos.Clients))
			authed.Get("/clients", api.ListClients(repos.Clients))

			authed.Post("/rates", api.CreateRateSheet(repos.Rates))
			authed.Get("/rates", api.ListRateSheets(repos.Rates))
			authed.Post("/rates/{rate_list_name}/items", api.AddRateItem(repos.Rates, svcs.Cache))
			authed.Get("/rates/{rate_list_name}/items", api.ListRateItems(repos.Rates, svcs.Cache))

			// Field tickets
			authed.Post("/tickets", api.CreateTicket(svcs.Tickets))
			authed.Get("/tickets", api.ListTickets(svcs.Tickets))
			authed.Get("/tickets/{ticket_number}", api.GetTicket(svcs.Tickets))
			authed.Post("/tickets/{ticket_number}/approve", api.ApproveTicket(svcs.Tickets))
			authed.Delete("/tickets/{ticket_number}", api.DeleteTicket(svcs.Tickets))

			// Bulk import wizard
			authed.Post("/import-profiles", api.CreateImportProfile(svcs.Profiles))
			authed.Get("/import-profiles", api.ListImportProfiles(svcs.Profiles))
			authed.Post("/imports/preview", api.PreviewImport(svcs.Import))
			authed.Post("/imports", api.RunImport(svcs.Import))

			// LEM billing bundles
			authed.Post("/lems", api.CreateLEM(svcs.LEMs))
			authed.Get("/lems", api.ListLEMs(svcs.LEMs))
			authed.Get("/lems/{lem_number}", api.GetLEM(svcs.LEMs))
			authed.Get("/lems/{lem_number}/export", api.ExportLEM(svcs.LEMExport))

			// Dashboard
			authed.Get("/dashboard/summary", api.DashboardSummaryHandler(svcs.Dashboard))
		})
	})
}
