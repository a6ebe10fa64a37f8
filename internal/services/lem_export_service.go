package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"fieldflow/backoffice/internal/db/repositories"
	"fieldflow/backoffice/internal/logging"
)

// LEMExportService renders a LEM as an accounting-ready XLSX workbook
// with a summary sheet and a per-ticket detail sheet.
type LEMExportService struct {
	lems    *LEMService
	tickets *repositories.TicketRepositoryGORM
}

func NewLEMExportService(lems *LEMService, tickets *repositories.TicketRepositoryGORM) *LEMExportService {
	return &LEMExportService{lems: lems, tickets: tickets}
}

// Export builds the workbook in memory and marks the LEM exported once
// the bytes are ready.
func (s *LEMExportService) Export(ctx context.Context, lemNumber string) (*bytes.Buffer, error) {
	lem, err := s.lems.Get(ctx, lemNumber)
	if err != nil {
		return nil, err
	}

	ticketNumbers := make([]string, 0, len(lem.Tickets))
	for _, t := range lem.Tickets {
		ticketNumbers = append(ticketNumbers, t.TicketNumber)
	}
	laborItems, err := s.tickets.ListLaborByTicketNumbers(ctx, ticketNumbers)
	if err != nil {
		return nil, fmt.Errorf("load labor detail: %w", err)
	}

	regByTicket := make(map[string]float64)
	otByTicket := make(map[string]float64)
	for _, item := range laborItems {
		regByTicket[item.TicketNumber] += item.RegularHours
		otByTicket[item.TicketNumber] += item.OvertimeHours
	}

	f := excelize.NewFile()
	defer f.Close()

	summarySheet := "LEM Summary"
	f.SetSheetName(f.GetSheetName(0), summarySheet)

	summaryRows := [][]any{
		{"LEM Number", lem.LEMNumber},
		{"Job Number", lem.JobNumber},
		{"LEM Date", lem.LEMDate.Format("2006-01-02")},
		{"Period Start", lem.PeriodStart.Format("2006-01-02")},
		{"Period End", lem.PeriodEnd.Format("2006-01-02")},
		{"Status", lem.Status},
		{"Ticket Count", len(lem.Tickets)},
	}
	for i, row := range summaryRows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write summary row: %w", err)
		}
	}

	ticketSheet := "Tickets"
	if _, err := f.NewSheet(ticketSheet); err != nil {
		return nil, fmt.Errorf("create ticket sheet: %w", err)
	}

	header := []any{"Ticket Number", "Ticket Date", "Status", "Work Description", "Regular Hours", "OT Hours"}
	if err := f.SetSheetRow(ticketSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write ticket header: %w", err)
	}
	for i, t := range lem.Tickets {
		row := []any{
			t.TicketNumber,
			t.TicketDate.Format("2006-01-02"),
			t.Status,
			t.WorkDescription,
			regByTicket[t.TicketNumber],
			otByTicket[t.TicketNumber],
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(ticketSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write ticket row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}

	if err := s.lems.MarkExported(ctx, lemNumber); err != nil {
		return nil, fmt.Errorf("mark exported: %w", err)
	}

	logging.Info("LEM exported", "lem_number", lemNumber, "tickets", len(lem.Tickets))
	return buf, nil
}
