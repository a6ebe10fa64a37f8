package importer

import (
	"fmt"
	"strings"
	"time"

	"fieldflow/backoffice/internal/constants"
)

// TicketGroup is one draft ticket assembled from the rows sharing a
// group key, carrying its line items in source order.
type TicketGroup struct {
	Key          string
	TicketNumber string
	JobNumber    string
	TicketDate   time.Time
	Labor        []LaborRecord
	Equipment    []EquipmentRecord
}

// dateLayouts are tried in order when parsing the mapped date cell.
var dateLayouts = []string{"2006-01-02", "2006/01/02", "01/02/2006", "02-Jan-2006"}

// GroupRecords partitions transformed records into ticket groups.
//
// The grouping key per source row is the trimmed ticket-number cell when
// that column is mapped and non-blank, otherwise "<job>_<date>" built
// from the mapped cells with UnknownJob/today fallbacks. Groups are
// emitted in first-occurrence order of their key, with each group's
// records in original relative order.
//
// When the mapping configures no usable grouping key at all the engine
// fails up front with ErrInsufficientGroupingKey; no partial output is
// ever produced.
func GroupRecords(m Mapping, labor []LaborRecord, equipment []EquipmentRecord, now time.Time) ([]TicketGroup, error) {
	if !m.GroupingConfigured() {
		return nil, ErrInsufficientGroupingKey
	}

	explicit := m.TicketNumber.Mapped()
	today := now.Format("2006-01-02")

	keyFor := func(row Row) string {
		if explicit {
			if num := row.Cell(m.TicketNumber.Column()); num != "" {
				return num
			}
		}
		job := constants.UnknownJobNumber
		if m.JobNumber.Mapped() {
			if v := row.Cell(m.JobNumber.Column()); v != "" {
				job = v
			}
		}
		date := today
		if m.Date.Mapped() {
			if v := row.Cell(m.Date.Column()); v != "" {
				date = v
			}
		}
		return job + "_" + date
	}

	groups := make(map[string]*TicketGroup)
	var order []string

	open := func(key string, first Row) *TicketGroup {
		g, ok := groups[key]
		if ok {
			return g
		}

		ticketNumber := key
		if !explicit {
			ticketNumber = fmt.Sprintf("DRAFT-%s-%d", key, now.Unix())
		}

		// Header fields come from the first row seen for the key; later
		// rows are not validated against it.
		job := "Unknown"
		if m.JobNumber.Mapped() {
			if v := first.Cell(m.JobNumber.Column()); v != "" {
				job = v
			}
		}
		date := now
		if m.Date.Mapped() {
			if parsed, ok := parseTicketDate(first.Cell(m.Date.Column())); ok {
				date = parsed
			}
		}

		g = &TicketGroup{
			Key:          key,
			TicketNumber: ticketNumber,
			JobNumber:    job,
			TicketDate:   date,
		}
		groups[key] = g
		order = append(order, key)
		return g
	}

	// Walk both record kinds merged by source row index so first
	// occurrence follows the source file, not the kind boundary.
	li, ei := 0, 0
	for li < len(labor) || ei < len(equipment) {
		if ei >= len(equipment) || (li < len(labor) && labor[li].Index <= equipment[ei].Index) {
			rec := labor[li]
			g := open(keyFor(rec.Source), rec.Source)
			g.Labor = append(g.Labor, rec)
			li++
		} else {
			rec := equipment[ei]
			g := open(keyFor(rec.Source), rec.Source)
			g.Equipment = append(g.Equipment, rec)
			ei++
		}
	}

	out := make([]TicketGroup, 0, len(order))
	for _, key := range order {
		out = append(out, *groups[key])
	}
	return out, nil
}

func parseTicketDate(cell string) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
