package services

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"fieldflow/backoffice/internal/common"
	"fieldflow/backoffice/internal/constants"
	"fieldflow/backoffice/internal/db/repositories"
	"fieldflow/backoffice/internal/models/dtos"
	gormModels "fieldflow/backoffice/internal/models/gorm"
)

// DashboardService aggregates the executive KPIs. The summary is
// memoized briefly so a wall of dashboards does not hammer the
// database.
type DashboardService struct {
	jobs    *repositories.JobRepository
	tickets *repositories.TicketRepositoryGORM
	lems    *repositories.LEMRepositoryGORM
	cache   *common.CacheService
	now     func() time.Time
}

func NewDashboardService(
	jobs *repositories.JobRepository,
	tickets *repositories.TicketRepositoryGORM,
	lems *repositories.LEMRepositoryGORM,
	cache *common.CacheService,
) *DashboardService {
	return &DashboardService{
		jobs:    jobs,
		tickets: tickets,
		lems:    lems,
		cache:   cache,
		now:     time.Now,
	}
}

func (s *DashboardService) Summary(ctx context.Context) (*dtos.DashboardSummary, error) {
	key := string(constants.CachePrefixDashboard) + "summary"
	ttl := time.Duration(constants.DashboardCacheTTLSeconds) * time.Second

	val, err := s.cache.GetOrSet(key, ttl, func() (any, error) {
		return s.buildSummary(ctx)
	})
	if err != nil {
		return nil, err
	}
	return val.(*dtos.DashboardSummary), nil
}

func (s *DashboardService) buildSummary(ctx context.Context) (*dtos.DashboardSummary, error) {
	now := s.now()
	monthStart := common.MonthStart(now)
	chartStart := now.AddDate(0, 0, -30)

	summary := &dtos.DashboardSummary{}
	var recentLEMs []gormModels.LEM
	var chartTickets []gormModels.FieldTicket

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		jobs, err := s.jobs.ListActive(gctx)
		if err != nil {
			return err
		}
		summary.ActiveJobs = int64(len(jobs))
		return nil
	})
	g.Go(func() error {
		count, err := s.tickets.CountSince(gctx, monthStart)
		summary.TicketsMonth = count
		return err
	})
	g.Go(func() error {
		count, err := s.tickets.CountByStatus(gctx, constants.TicketStatusDraft)
		summary.PendingDrafts = count
		return err
	})
	g.Go(func() error {
		var err error
		recentLEMs, err = s.lems.ListRecent(gctx, 5)
		return err
	})
	g.Go(func() error {
		var err error
		chartTickets, err = s.tickets.ListSince(gctx, chartStart)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary.RecentLEMs = make([]dtos.LEMSummary, 0, len(recentLEMs))
	for _, l := range recentLEMs {
		summary.RecentLEMs = append(summary.RecentLEMs, dtos.LEMSummary{
			LEMNumber:   l.LEMNumber,
			JobNumber:   l.JobNumber,
			Status:      l.Status,
			LEMDate:     l.LEMDate.Format("2006-01-02"),
			TicketCount: len(l.Tickets),
		})
	}

	manHours, err := s.dailyManHours(ctx, chartTickets)
	if err != nil {
		return nil, err
	}
	summary.DailyManHours = manHours

	return summary, nil
}

// dailyManHours sums regular plus overtime hours per ticket date across
// the chart window. The merge happens here rather than in SQL because
// labor rows hang off ticket_number while the date lives on the header.
func (s *DashboardService) dailyManHours(ctx context.Context, tickets []gormModels.FieldTicket) ([]dtos.DailyManHours, error) {
	if len(tickets) == 0 {
		return []dtos.DailyManHours{}, nil
	}

	dateByTicket := make(map[string]string, len(tickets))
	ticketNumbers := make([]string, 0, len(tickets))
	for _, t := range tickets {
		dateByTicket[t.TicketNumber] = t.TicketDate.Format("2006-01-02")
		ticketNumbers = append(ticketNumbers, t.TicketNumber)
	}

	laborItems, err := s.tickets.ListLaborByTicketNumbers(ctx, ticketNumbers)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, item := range laborItems {
		date, ok := dateByTicket[item.TicketNumber]
		if !ok {
			continue
		}
		totals[date] += item.RegularHours + item.OvertimeHours
	}

	out := make([]dtos.DailyManHours, 0, len(totals))
	for date, hours := range totals {
		out = append(out, dtos.DailyManHours{Date: date, TotalHours: hours})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}
