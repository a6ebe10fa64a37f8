package importer

import "encoding/json"

// Field is an optional reference to a source column. The zero value is
// unmapped; JSON null round-trips to unmapped so stored profiles carry
// no sentinel strings.
type Field struct {
	column string
	mapped bool
}

// MapTo returns a Field bound to the named source column.
func MapTo(column string) Field {
	return Field{column: column, mapped: column != ""}
}

func (f Field) Mapped() bool {
	return f.mapped
}

func (f Field) Column() string {
	return f.column
}

func (f Field) MarshalJSON() ([]byte, error) {
	if !f.mapped {
		return []byte("null"), nil
	}
	return json.Marshal(f.column)
}

func (f *Field) UnmarshalJSON(data []byte) error {
	var col *string
	if err := json.Unmarshal(data, &col); err != nil {
		return err
	}
	if col == nil || *col == "" {
		*f = Field{}
		return nil
	}
	*f = MapTo(*col)
	return nil
}

// Mapping binds logical ticket fields to source columns. Grouping keys
// and the two line-item kinds are kept in one flat struct, mirroring how
// operators configure them in a single wizard pass.
type Mapping struct {
	TicketNumber Field `json:"ticket_num"`
	JobNumber    Field `json:"job_num"`
	Date         Field `json:"date"`

	CrewName      Field `json:"crew_name"`
	Trade         Field `json:"trade"`
	RegularHours  Field `json:"reg_hrs"`
	OvertimeHours Field `json:"ot_hrs"`

	UnitNumber    Field `json:"unit_num"`
	EquipmentName Field `json:"eq_name"`
	UsageHours    Field `json:"usage_hrs"`
}

// Describes returns false when the mapping binds neither line-item
// primary key; such a profile would never emit a record.
func (m Mapping) Describes() bool {
	return m.CrewName.Mapped() || m.UnitNumber.Mapped()
}

// GroupingConfigured reports whether the mapping carries enough columns
// to derive a group key: an explicit ticket number, or the job+date
// fallback pair.
func (m Mapping) GroupingConfigured() bool {
	return m.TicketNumber.Mapped() || (m.JobNumber.Mapped() && m.Date.Mapped())
}
