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

// TicketService covers manual ticket entry and the draft review
// lifecycle.
type TicketService struct {
	tickets *repositories.TicketRepositoryGORM
	metrics *metrics.MetricsRegistry
}

func NewTicketService(tickets *repositories.TicketRepositoryGORM, metricsReg *metrics.MetricsRegistry) *TicketService {
	return &TicketService{tickets: tickets, metrics: metricsReg}
}

// CreateManual stores a hand-entered ticket. Line rows whose primary
// cell is blank are skipped the same way the import wizard skips spacer
// rows. The header and every kept line land in one transaction.
func (s *TicketService) CreateManual(ctx context.Context, req dtos.CreateTicketRequest) (*gormModels.FieldTicket, error) {
	ticketNumber := strings.TrimSpace(req.TicketNumber)
	if ticketNumber == "" {
		return nil, fmt.Errorf("ticket number is required")
	}
	if strings.TrimSpace(req.JobNumber) == "" {
		return nil, fmt.Errorf("job number is required")
	}

	ticketDate, err := common.ParseDate(req.TicketDate)
	if err != nil {
		return nil, fmt.Errorf("ticket date: %w", err)
	}

	ticket := &gormModels.FieldTicket{
		TicketNumber:     ticketNumber,
		JobNumber:        strings.TrimSpace(req.JobNumber),
		TicketDate:       ticketDate,
		AFENumber:        req.AFENumber,
		PONumber:         req.PONumber,
		MajorCode:        req.MajorCode,
		MinorCode:        req.MinorCode,
		WorkDescription:  req.WorkDescription,
		InternalComments: req.InternalComments,
		Status:           constants.TicketStatusCreated,
	}

	var labor []gormModels.LaborItem
	for _, row := range req.Labor {
		if strings.TrimSpace(row.CrewName) == "" {
			continue
		}
		trade := row.Trade
		if trade == "" {
			trade = constants.DefaultTrade
		}
		labor = append(labor, gormModels.LaborItem{
			TicketNumber:  ticketNumber,
			CrewName:      strings.TrimSpace(row.CrewName),
			Trade:         trade,
			RegularHours:  row.RegularHours,
			OvertimeHours: row.OvertimeHours,
			TravelHours:   row.TravelHours,
			Subsistence:   row.Subsistence,
		})
	}

	var equipment []gormModels.EquipmentItem
	for _, row := range req.Equipment {
		if strings.TrimSpace(row.UnitNumber) == "" {
			continue
		}
		name := row.EquipmentName
		if name == "" {
			name = constants.DefaultEquipmentName
		}
		equipment = append(equipment, gormModels.EquipmentItem{
			TicketNumber:  ticketNumber,
			UnitNumber:    strings.TrimSpace(row.UnitNumber),
			EquipmentName: name,
			OperatorName:  row.OperatorName,
			UsageHours:    row.UsageHours,
		})
	}

	var material []gormModels.MaterialItem
	for _, row := range req.Material {
		if strings.TrimSpace(row.ItemDescription) == "" {
			continue
		}
		material = append(material, gormModels.MaterialItem{
			TicketNumber:    ticketNumber,
			ItemDescription: strings.TrimSpace(row.ItemDescription),
			Quantity:        row.Quantity,
			Rate:            row.Rate,
		})
	}

	if err := s.tickets.CreateWithItems(ctx, ticket, labor, equipment, material); err != nil {
		return nil, err
	}

	s.metrics.TicketsCreatedTotal.WithLabelValues("manual").Inc()
	logging.Info("Ticket created",
		"ticket_number", ticketNumber,
		"job_number", ticket.JobNumber,
		"labor_rows", len(labor),
		"equipment_rows", len(equipment),
		"material_rows", len(material),
	)
	return ticket, nil
}

func (s *TicketService) Get(ctx context.Context, ticketNumber string) (*gormModels.FieldTicket, error) {
	ticket, err := s.tickets.GetByNumber(ctx, ticketNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return ticket, nil
}

func (s *TicketService) ListRecent(ctx context.Context, limit int) ([]gormModels.FieldTicket, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.tickets.ListRecent(ctx, limit)
}

func (s *TicketService) ListUnassigned(ctx context.Context, jobNumber string, start, end time.Time) ([]gormModels.FieldTicket, error) {
	return s.tickets.ListUnassigned(ctx, jobNumber, start, end)
}

// Approve promotes a draft. Approving an already approved ticket is a
// no-op, so review screens can be refreshed and resubmitted safely.
func (s *TicketService) Approve(ctx context.Context, ticketNumber string) (*gormModels.FieldTicket, error) {
	ticket, err := s.Get(ctx, ticketNumber)
	if err != nil {
		return nil, err
	}
	if ticket.Status == constants.TicketStatusApproved {
		return ticket, nil
	}

	if err := s.tickets.UpdateStatus(ctx, ticketNumber, constants.TicketStatusApproved); err != nil {
		return nil, err
	}
	ticket.Status = constants.TicketStatusApproved

	logging.Info("Ticket approved", "ticket_number", ticketNumber)
	return ticket, nil
}

// Delete removes a ticket and all of its line items atomically.
func (s *TicketService) Delete(ctx context.Context, ticketNumber string) error {
	if _, err := s.Get(ctx, ticketNumber); err != nil {
		return err
	}
	if err := s.tickets.DeleteWithItems(ctx, ticketNumber); err != nil {
		return err
	}
	logging.Info("Ticket deleted", "ticket_number", ticketNumber)
	return nil
}
