package importer

import (
	"strconv"
	"strings"

	"fieldflow/backoffice/internal/constants"
)

// LaborRecord is a normalized labor line produced from one source row.
// Source and Index point back at the originating row so the grouping
// engine can read the key cells.
type LaborRecord struct {
	CrewName      string
	Trade         string
	RegularHours  float64
	OvertimeHours float64
	Subsistence   bool

	Source Row
	Index  int
}

// EquipmentRecord is a normalized equipment line produced from one
// source row.
type EquipmentRecord struct {
	UnitNumber    string
	EquipmentName string
	UsageHours    float64

	Source Row
	Index  int
}

// Transform applies a mapping to a decoded table. It is total: malformed
// numeric cells coerce to zero and never reject the row. A kind whose
// primary key column (crew name for labor, unit number for equipment) is
// unmapped yields no records; rows whose primary key cell is blank are
// dropped as spacer/total rows. Output preserves source row order.
func Transform(t *Table, m Mapping) ([]LaborRecord, []EquipmentRecord) {
	var labor []LaborRecord
	var equipment []EquipmentRecord

	for i, row := range t.Rows {
		if m.CrewName.Mapped() {
			if name := row.Cell(m.CrewName.Column()); name != "" {
				labor = append(labor, LaborRecord{
					CrewName:      name,
					Trade:         cellOrDefault(row, m.Trade, constants.DefaultTrade),
					RegularHours:  numericCell(row, m.RegularHours),
					OvertimeHours: numericCell(row, m.OvertimeHours),
					Subsistence:   false, // not part of the import wizard; set during review
					Source:        row,
					Index:         i,
				})
			}
		}

		if m.UnitNumber.Mapped() {
			if unit := row.Cell(m.UnitNumber.Column()); unit != "" {
				equipment = append(equipment, EquipmentRecord{
					UnitNumber:    unit,
					EquipmentName: cellOrDefault(row, m.EquipmentName, constants.DefaultEquipmentName),
					UsageHours:    numericCell(row, m.UsageHours),
					Source:        row,
					Index:         i,
				})
			}
		}
	}

	return labor, equipment
}

func cellOrDefault(row Row, f Field, fallback string) string {
	if !f.Mapped() {
		return fallback
	}
	if v := row.Cell(f.Column()); v != "" {
		return v
	}
	return fallback
}

// numericCell coerces the mapped cell to a float. Missing mappings and
// unparseable values become 0 by policy, not error.
func numericCell(row Row, f Field) float64 {
	if !f.Mapped() {
		return 0
	}
	v := strings.TrimSpace(row.Cell(f.Column()))
	if v == "" {
		return 0
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	if err != nil {
		return 0
	}
	return n
}
