package importer

import (
	"strings"
	"testing"
)

func laborMapping() Mapping {
	return Mapping{
		CrewName:      MapTo("Name"),
		Trade:         MapTo("Trade"),
		RegularHours:  MapTo("RegHrs"),
		OvertimeHours: MapTo("OTHrs"),
	}
}

func mustTable(t *testing.T, csv string) *Table {
	t.Helper()
	table, err := ReadTable(strings.NewReader(csv), FormatCSV, 0)
	if err != nil {
		t.Fatalf("Failed to read table: %v", err)
	}
	return table
}

func TestTransform_DropsBlankPrimaryKeyRows(t *testing.T) {
	table := mustTable(t, "Name,Trade,RegHrs,OTHrs\nAlice,Welder,8,2\n,,,\nBob,Laborer,8,0\n")

	labor, equipment := Transform(table, laborMapping())

	if len(labor) != 2 {
		t.Fatalf("Expected 2 labor records, got %d", len(labor))
	}
	if labor[0].CrewName != "Alice" || labor[1].CrewName != "Bob" {
		t.Errorf("Row order not preserved: %+v", labor)
	}
	if len(equipment) != 0 {
		t.Errorf("Expected no equipment records, got %d", len(equipment))
	}
}

func TestTransform_OutputNeverExceedsInput(t *testing.T) {
	table := mustTable(t, "Name\nAlice\nBob\n\n\n")

	labor, _ := Transform(table, Mapping{CrewName: MapTo("Name")})
	if len(labor) > len(table.Rows) {
		t.Errorf("Output %d exceeds input %d", len(labor), len(table.Rows))
	}
}

func TestTransform_NumericCoercion(t *testing.T) {
	table := mustTable(t, "Name,RegHrs\nAlice,12.5\nBob,abc\nCarol,\n")

	m := Mapping{CrewName: MapTo("Name"), RegularHours: MapTo("RegHrs")}
	labor, _ := Transform(table, m)

	if len(labor) != 3 {
		t.Fatalf("Expected all 3 rows emitted, got %d", len(labor))
	}
	if labor[0].RegularHours != 12.5 {
		t.Errorf("Expected 12.5, got %v", labor[0].RegularHours)
	}
	if labor[1].RegularHours != 0 {
		t.Errorf("Expected malformed cell to coerce to 0, got %v", labor[1].RegularHours)
	}
	if labor[2].RegularHours != 0 {
		t.Errorf("Expected blank cell to coerce to 0, got %v", labor[2].RegularHours)
	}
}

func TestTransform_MissingNumericMappingIsZero(t *testing.T) {
	table := mustTable(t, "Name\nAlice\n")

	labor, _ := Transform(table, Mapping{CrewName: MapTo("Name")})
	if len(labor) != 1 || labor[0].RegularHours != 0 || labor[0].OvertimeHours != 0 {
		t.Errorf("Expected emitted record with zero hours, got %+v", labor)
	}
}

func TestTransform_Defaults(t *testing.T) {
	table := mustTable(t, "Name,Unit\nAlice,EX-100\n")

	m := Mapping{CrewName: MapTo("Name"), UnitNumber: MapTo("Unit")}
	labor, equipment := Transform(table, m)

	if labor[0].Trade != "Laborer" {
		t.Errorf("Expected default trade Laborer, got %q", labor[0].Trade)
	}
	if labor[0].Subsistence {
		t.Error("Expected subsistence to default false")
	}
	if equipment[0].EquipmentName != "Equipment" {
		t.Errorf("Expected default equipment name, got %q", equipment[0].EquipmentName)
	}
}

func TestTransform_UnmappedKindEmitsNothing(t *testing.T) {
	table := mustTable(t, "Name,Unit\nAlice,EX-100\n")

	labor, equipment := Transform(table, Mapping{UnitNumber: MapTo("Unit")})
	if len(labor) != 0 {
		t.Errorf("Expected no labor records with crew name unmapped, got %d", len(labor))
	}
	if len(equipment) != 1 {
		t.Errorf("Expected 1 equipment record, got %d", len(equipment))
	}
}
