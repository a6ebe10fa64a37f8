package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"fieldflow/backoffice/internal/common"
	"fieldflow/backoffice/internal/constants"
	"fieldflow/backoffice/internal/db/repositories"
	"fieldflow/backoffice/internal/logging"
	"fieldflow/backoffice/internal/metrics"
	"fieldflow/backoffice/internal/models/dtos"
	gormModels "fieldflow/backoffice/internal/models/gorm"
)

// LEMService assembles billing bundles from approved tickets.
type LEMService struct {
	lems    *repositories.LEMRepositoryGORM
	tickets *repositories.TicketRepositoryGORM
	metrics *metrics.MetricsRegistry
}

func NewLEMService(
	lems *repositories.LEMRepositoryGORM,
	tickets *repositories.TicketRepositoryGORM,
	metricsReg *metrics.MetricsRegistry,
) *LEMService {
	return &LEMService{lems: lems, tickets: tickets, metrics: metricsReg}
}

// Create stores a LEM header and claims the selected tickets in one
// transaction. Tickets already claimed by another bundle are skipped;
// the caller learns how many actually linked.
func (s *LEMService) Create(ctx context.Context, req dtos.CreateLEMRequest) (*gormModels.LEM, int64, error) {
	lemNumber := strings.TrimSpace(req.LEMNumber)
	if lemNumber == "" {
		return nil, 0, fmt.Errorf("lem number is required")
	}
	if len(req.TicketNumbers) == 0 {
		return nil, 0, ErrNoTickets
	}

	periodStart, err := common.ParseDate(req.PeriodStart)
	if err != nil {
		return nil, 0, fmt.Errorf("period start: %w", err)
	}
	periodEnd, err := common.ParseDate(req.PeriodEnd)
	if err != nil {
		return nil, 0, fmt.Errorf("period end: %w", err)
	}
	if periodEnd.Before(periodStart) {
		return nil, 0, fmt.Errorf("period end precedes period start")
	}

	lem := &gormModels.LEM{
		LEMNumber:   lemNumber,
		JobNumber:   strings.TrimSpace(req.JobNumber),
		LEMDate:     time.Now(),
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Status:      constants.LEMStatusGenerated,
	}

	linked, err := s.lems.CreateWithTickets(ctx, lem, req.TicketNumbers)
	if err != nil {
		return nil, 0, err
	}

	s.metrics.LEMsGeneratedTotal.Inc()
	logging.Info("LEM generated",
		"lem_number", lemNumber,
		"job_number", lem.JobNumber,
		"tickets_requested", len(req.TicketNumbers),
		"tickets_linked", linked,
	)
	return lem, linked, nil
}

func (s *LEMService) Get(ctx context.Context, lemNumber string) (*gormModels.LEM, error) {
	lem, err := s.lems.GetByNumber(ctx, lemNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLEMNotFound
		}
		return nil, err
	}
	return lem, nil
}

func (s *LEMService) ListRecent(ctx context.Context, limit int) ([]gormModels.LEM, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	return s.lems.ListRecent(ctx, limit)
}

// MarkExported records that the workbook left the building.
func (s *LEMService) MarkExported(ctx context.Context, lemNumber string) error {
	return s.lems.UpdateStatus(ctx, lemNumber, constants.LEMStatusExported)
}
