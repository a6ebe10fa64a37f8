package importer

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestGroupRecords_InsufficientKeyFailsBeforeProcessing(t *testing.T) {
	table := mustTable(t, "Name\nAlice\n")
	labor, _ := Transform(table, Mapping{CrewName: MapTo("Name")})

	groups, err := GroupRecords(Mapping{CrewName: MapTo("Name")}, labor, nil, time.Now())
	if !errors.Is(err, ErrInsufficientGroupingKey) {
		t.Fatalf("Expected ErrInsufficientGroupingKey, got %v", err)
	}
	if groups != nil {
		t.Errorf("Expected no groups, got %d", len(groups))
	}
}

func TestGroupRecords_JobDateAloneIsSufficient(t *testing.T) {
	m := Mapping{CrewName: MapTo("Name"), JobNumber: MapTo("Job"), Date: MapTo("Date")}
	if !m.GroupingConfigured() {
		t.Error("Expected job+date mapping to configure grouping")
	}
	if (Mapping{CrewName: MapTo("Name"), JobNumber: MapTo("Job")}).GroupingConfigured() {
		t.Error("Job number alone must not configure grouping")
	}
}

func TestGroupRecords_FirstOccurrenceOrder(t *testing.T) {
	table := mustTable(t, "Name,Ticket\nr1,B\nr2,A\nr3,B\nr4,A\n")
	m := Mapping{CrewName: MapTo("Name"), TicketNumber: MapTo("Ticket")}
	labor, _ := Transform(table, m)

	groups, err := GroupRecords(m, labor, nil, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(groups) != 2 || groups[0].Key != "B" || groups[1].Key != "A" {
		t.Fatalf("Expected groups [B A], got %+v", groups)
	}
	if groups[0].Labor[0].CrewName != "r1" || groups[0].Labor[1].CrewName != "r3" {
		t.Errorf("Group B lost relative order: %+v", groups[0].Labor)
	}
	if groups[1].Labor[0].CrewName != "r2" || groups[1].Labor[1].CrewName != "r4" {
		t.Errorf("Group A lost relative order: %+v", groups[1].Labor)
	}
}

func TestGroupRecords_ExplicitTicketNumberWins(t *testing.T) {
	table := mustTable(t, "Name,Ticket,Job,Date\nAlice,FT-100,25-001,2026-01-05\n")
	m := Mapping{
		CrewName:     MapTo("Name"),
		TicketNumber: MapTo("Ticket"),
		JobNumber:    MapTo("Job"),
		Date:         MapTo("Date"),
	}
	labor, _ := Transform(table, m)

	groups, _ := GroupRecords(m, labor, nil, time.Now())
	if groups[0].TicketNumber != "FT-100" {
		t.Errorf("Expected verbatim ticket number, got %q", groups[0].TicketNumber)
	}
	if groups[0].JobNumber != "25-001" {
		t.Errorf("Expected job from first row, got %q", groups[0].JobNumber)
	}
}

func TestGroupRecords_BlankTicketCellFallsBackPerRow(t *testing.T) {
	table := mustTable(t, "Name,Ticket,Job,Date\nAlice,FT-100,25-001,2026-01-05\nBob,,25-001,2026-01-05\n")
	m := Mapping{
		CrewName:     MapTo("Name"),
		TicketNumber: MapTo("Ticket"),
		JobNumber:    MapTo("Job"),
		Date:         MapTo("Date"),
	}
	labor, _ := Transform(table, m)

	groups, _ := GroupRecords(m, labor, nil, time.Now())
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}
	if groups[1].Key != "25-001_2026-01-05" {
		t.Errorf("Expected composite key for blank ticket cell, got %q", groups[1].Key)
	}
}

func TestGroupRecords_EndToEndDraftScenario(t *testing.T) {
	csv := "Name,Trade,RegHrs,OTHrs,JobNum,Date\n" +
		"Alice,Welder,8,2,25-001,2026-01-05\n" +
		"Bob,Laborer,8,0,25-001,2026-01-05\n"
	table := mustTable(t, csv)

	m := Mapping{
		CrewName:      MapTo("Name"),
		Trade:         MapTo("Trade"),
		RegularHours:  MapTo("RegHrs"),
		OvertimeHours: MapTo("OTHrs"),
		JobNumber:     MapTo("JobNum"),
		Date:          MapTo("Date"),
	}

	labor, equipment := Transform(table, m)
	now := time.Now()
	groups, err := GroupRecords(m, labor, equipment, now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(groups) != 1 {
		t.Fatalf("Expected exactly one group, got %d", len(groups))
	}
	g := groups[0]
	if g.Key != "25-001_2026-01-05" {
		t.Errorf("Expected key 25-001_2026-01-05, got %q", g.Key)
	}
	if !strings.HasPrefix(g.TicketNumber, "DRAFT-25-001_2026-01-05-") {
		t.Errorf("Expected synthesized draft ticket number, got %q", g.TicketNumber)
	}
	wantSuffix := fmt.Sprintf("-%d", now.Unix())
	if !strings.HasSuffix(g.TicketNumber, wantSuffix) {
		t.Errorf("Expected ticket number to end with unix timestamp, got %q", g.TicketNumber)
	}
	if g.TicketDate.Format("2006-01-02") != "2026-01-05" {
		t.Errorf("Expected ticket date 2026-01-05, got %v", g.TicketDate)
	}
	if len(g.Labor) != 2 || len(g.Equipment) != 0 {
		t.Fatalf("Expected 2 labor / 0 equipment, got %d/%d", len(g.Labor), len(g.Equipment))
	}
	if g.Labor[0].CrewName != "Alice" || g.Labor[0].RegularHours != 8 || g.Labor[0].OvertimeHours != 2 {
		t.Errorf("Unexpected first labor record: %+v", g.Labor[0])
	}
	if g.Labor[1].CrewName != "Bob" || g.Labor[1].RegularHours != 8 || g.Labor[1].OvertimeHours != 0 {
		t.Errorf("Unexpected second labor record: %+v", g.Labor[1])
	}
}

func TestGroupRecords_MalformedHoursStillIncluded(t *testing.T) {
	csv := "Name,Trade,RegHrs,OTHrs,JobNum,Date\n" +
		"Alice,Welder,8,2,25-001,2026-01-05\n" +
		"Bob,Laborer,N/A,0,25-001,2026-01-05\n"
	table := mustTable(t, csv)

	m := Mapping{
		CrewName:      MapTo("Name"),
		Trade:         MapTo("Trade"),
		RegularHours:  MapTo("RegHrs"),
		OvertimeHours: MapTo("OTHrs"),
		JobNumber:     MapTo("JobNum"),
		Date:          MapTo("Date"),
	}

	labor, _ := Transform(table, m)
	groups, err := GroupRecords(m, labor, nil, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(groups) != 1 || len(groups[0].Labor) != 2 {
		t.Fatalf("Expected Bob's row included, got %+v", groups)
	}
	if groups[0].Labor[1].RegularHours != 0 {
		t.Errorf("Expected N/A to coerce to 0, got %v", groups[0].Labor[1].RegularHours)
	}
}

func TestGroupRecords_MissingKeyCellsUseFallbacks(t *testing.T) {
	table := mustTable(t, "Name,Job,Date\nAlice,,\n")
	m := Mapping{CrewName: MapTo("Name"), JobNumber: MapTo("Job"), Date: MapTo("Date")}
	labor, _ := Transform(table, m)

	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	groups, _ := GroupRecords(m, labor, nil, now)

	if groups[0].Key != "UnknownJob_2026-02-01" {
		t.Errorf("Expected fallback key, got %q", groups[0].Key)
	}
	if groups[0].JobNumber != "Unknown" {
		t.Errorf("Expected Unknown job number, got %q", groups[0].JobNumber)
	}
	if !groups[0].TicketDate.Equal(now) {
		t.Errorf("Expected today's date fallback, got %v", groups[0].TicketDate)
	}
}

func TestMapping_JSONRoundTrip(t *testing.T) {
	m := Mapping{CrewName: MapTo("Name"), RegularHours: MapTo("RegHrs")}

	data, err := m.CrewName.MarshalJSON()
	if err != nil || string(data) != `"Name"` {
		t.Errorf("Expected quoted column, got %s (%v)", data, err)
	}

	var f Field
	if err := f.UnmarshalJSON([]byte("null")); err != nil {
		t.Fatalf("Expected null to decode, got %v", err)
	}
	if f.Mapped() {
		t.Error("Expected null to decode as unmapped")
	}
}
