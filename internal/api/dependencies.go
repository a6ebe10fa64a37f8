package api

import (
	"fieldflow/backoffice/internal/common"
	"fieldflow/backoffice/internal/db"
	"fieldflow/backoffice/internal/db/repositories"
	"fieldflow/backoffice/internal/metrics"
	"fieldflow/backoffice/internal/services"
)

type Repositories struct {
	Jobs     *repositories.JobRepository
	Clients  *repositories.ClientRepository
	Rates    *repositories.RateRepository
	Keys     *repositories.KeysRepo
	Tickets  *repositories.TicketRepositoryGORM
	LEMs     *repositories.LEMRepositoryGORM
	Profiles *repositories.ImportProfileRepository
}

type Services struct {
	Cache     *common.CacheService
	Session   *common.SessionService
	Profiles  *services.ImportProfileService
	Import    *services.ImportService
	Tickets   *services.TicketService
	LEMs      *services.LEMService
	LEMExport *services.LEMExportService
	Dashboard *services.DashboardService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	repos := &Repositories{
		Jobs:     repositories.NewJobRepository(db.DB),
		Clients:  repositories.NewClientRepository(db.DB),
		Rates:    repositories.NewRateRepository(db.DB),
		Keys:     repositories.NewApiKeysRepo(db.DB),
		Tickets:  repositories.NewTicketRepositoryGORM(db.PgDB),
		LEMs:     repositories.NewLEMRepositoryGORM(db.PgDB),
		Profiles: repositories.NewImportProfileRepository(db.PgDB),
	}

	cacheSvc := common.NewCacheService(300, 600)
	sessionSvc := common.NewSessionService(common.NewRedisClient())
	profileSvc := services.NewImportProfileService(repos.Profiles)
	ticketSvc := services.NewTicketService(repos.Tickets, metricsReg)
	lemSvc := services.NewLEMService(repos.LEMs, repos.Tickets, metricsReg)

	svcs := &Services{
		Cache:     cacheSvc,
		Session:   sessionSvc,
		Profiles:  profileSvc,
		Import:    services.NewImportService(profileSvc, repos.Tickets, metricsReg),
		Tickets:   ticketSvc,
		LEMs:      lemSvc,
		LEMExport: services.NewLEMExportService(lemSvc, repos.Tickets),
		Dashboard: services.NewDashboardService(repos.Jobs, repos.Tickets, repos.LEMs, cacheSvc),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
	}, nil
}
