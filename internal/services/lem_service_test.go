package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"

	"fieldflow/backoffice/internal/constants"
	"fieldflow/backoffice/internal/db/repositories"
	"fieldflow/backoffice/internal/models/dtos"
)

func newLEMFixture(t *testing.T) (*LEMService, *LEMExportService, *TicketService) {
	repo, db := newTicketRepo(t)
	tickets := NewTicketService(repo, testMetricsRegistry())
	lems := NewLEMService(repositories.NewLEMRepositoryGORM(db), repo, testMetricsRegistry())
	export := NewLEMExportService(lems, repo)
	return lems, export, tickets
}

func seedTicket(t *testing.T, tickets *TicketService, number string) {
	t.Helper()
	_, err := tickets.CreateManual(context.Background(), dtos.CreateTicketRequest{
		TicketNumber: number,
		JobNumber:    "25-001",
		TicketDate:   "2026-02-10",
		Labor: []dtos.LaborRowRequest{
			{CrewName: "Alice", RegularHours: 8, OvertimeHours: 1},
		},
	})
	if err != nil {
		t.Fatalf("seed ticket %s: %v", number, err)
	}
}

func TestLEMCreateLinksOnlyUnclaimedTickets(t *testing.T) {
	lems, _, tickets := newLEMFixture(t)
	ctx := context.Background()

	seedTicket(t, tickets, "T-1")
	seedTicket(t, tickets, "T-2")

	first, linked, err := lems.Create(ctx, dtos.CreateLEMRequest{
		LEMNumber:     "LEM-001",
		JobNumber:     "25-001",
		PeriodStart:   "2026-02-01",
		PeriodEnd:     "2026-02-15",
		TicketNumbers: []string{"T-1"},
	})
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}
	if linked != 1 {
		t.Errorf("linked = %d, want 1", linked)
	}
	if first.Status != constants.LEMStatusGenerated {
		t.Errorf("status = %q, want %q", first.Status, constants.LEMStatusGenerated)
	}

	// T-1 is claimed; only T-2 should attach to the second bundle.
	_, linked, err = lems.Create(ctx, dtos.CreateLEMRequest{
		LEMNumber:     "LEM-002",
		JobNumber:     "25-001",
		PeriodStart:   "2026-02-01",
		PeriodEnd:     "2026-02-15",
		TicketNumbers: []string{"T-1", "T-2"},
	})
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if linked != 1 {
		t.Errorf("second linked = %d, want 1", linked)
	}

	stored, err := lems.Get(ctx, "LEM-002")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(stored.Tickets) != 1 || stored.Tickets[0].TicketNumber != "T-2" {
		t.Errorf("LEM-002 tickets = %+v", stored.Tickets)
	}
}

func TestLEMCreateValidation(t *testing.T) {
	lems, _, _ := newLEMFixture(t)
	ctx := context.Background()

	_, _, err := lems.Create(ctx, dtos.CreateLEMRequest{
		LEMNumber:   "LEM-001",
		PeriodStart: "2026-02-01",
		PeriodEnd:   "2026-02-15",
	})
	if !errors.Is(err, ErrNoTickets) {
		t.Errorf("empty tickets err = %v, want ErrNoTickets", err)
	}

	_, _, err = lems.Create(ctx, dtos.CreateLEMRequest{
		LEMNumber:     "LEM-001",
		PeriodStart:   "2026-02-15",
		PeriodEnd:     "2026-02-01",
		TicketNumbers: []string{"T-1"},
	})
	if err == nil {
		t.Error("expected error for inverted period")
	}
}

func TestLEMExportProducesWorkbookAndMarksExported(t *testing.T) {
	lems, export, tickets := newLEMFixture(t)
	ctx := context.Background()

	seedTicket(t, tickets, "T-1")
	seedTicket(t, tickets, "T-2")

	if _, _, err := lems.Create(ctx, dtos.CreateLEMRequest{
		LEMNumber:     "LEM-001",
		JobNumber:     "25-001",
		PeriodStart:   "2026-02-01",
		PeriodEnd:     "2026-02-15",
		TicketNumbers: []string{"T-1", "T-2"},
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	buf, err := export.Export(ctx, "LEM-001")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Tickets")
	if err != nil {
		t.Fatalf("read ticket sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Errorf("ticket sheet rows = %d, want header plus 2", len(rows))
	}

	cell, err := f.GetCellValue("LEM Summary", "B1")
	if err != nil || cell != "LEM-001" {
		t.Errorf("summary B1 = %q (%v), want LEM-001", cell, err)
	}

	stored, err := lems.Get(ctx, "LEM-001")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Status != constants.LEMStatusExported {
		t.Errorf("status after export = %q, want %q", stored.Status, constants.LEMStatusExported)
	}
}

func TestLEMExportUnknownNumber(t *testing.T) {
	_, export, _ := newLEMFixture(t)

	if _, err := export.Export(context.Background(), "missing"); !errors.Is(err, ErrLEMNotFound) {
		t.Fatalf("Export err = %v, want ErrLEMNotFound", err)
	}
}
