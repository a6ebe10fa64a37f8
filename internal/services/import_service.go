package services

import (
	"context"
	"io"
	"time"

	"fieldflow/backoffice/internal/constants"
	"fieldflow/backoffice/internal/db/repositories"
	"fieldflow/backoffice/internal/importer"
	"fieldflow/backoffice/internal/logging"
	"fieldflow/backoffice/internal/metrics"
	"fieldflow/backoffice/internal/models/dtos"
	gormModels "fieldflow/backoffice/internal/models/gorm"
)

// ImportService runs the bulk-import pipeline: decode the uploaded
// table through a saved profile, normalize rows, group them into draft
// tickets, and either preview or commit the result.
type ImportService struct {
	profiles *ImportProfileService
	tickets  *repositories.TicketRepositoryGORM
	metrics  *metrics.MetricsRegistry
	now      func() time.Time
}

func NewImportService(
	profiles *ImportProfileService,
	tickets *repositories.TicketRepositoryGORM,
	metricsReg *metrics.MetricsRegistry,
) *ImportService {
	return &ImportService{
		profiles: profiles,
		tickets:  tickets,
		metrics:  metricsReg,
		now:      time.Now,
	}
}

func (s *ImportService) groups(ctx context.Context, profileName string, file io.Reader, format importer.Format) ([]importer.TicketGroup, error) {
	profile, mapping, err := s.profiles.Get(ctx, profileName)
	if err != nil {
		return nil, err
	}

	table, err := importer.ReadTable(file, format, profile.HeaderRowIndex)
	if err != nil {
		return nil, err
	}

	labor, equipment := importer.Transform(table, mapping)
	return importer.GroupRecords(mapping, labor, equipment, s.now())
}

// Preview runs the pipeline without writing anything and summarizes the
// draft tickets an import would create.
func (s *ImportService) Preview(ctx context.Context, profileName string, file io.Reader, format importer.Format) ([]dtos.ImportGroupPreview, error) {
	groups, err := s.groups(ctx, profileName, file, format)
	if err != nil {
		return nil, err
	}

	previews := make([]dtos.ImportGroupPreview, 0, len(groups))
	for _, g := range groups {
		p := dtos.ImportGroupPreview{
			GroupKey:      g.Key,
			TicketNumber:  g.TicketNumber,
			JobNumber:     g.JobNumber,
			TicketDate:    g.TicketDate.Format("2006-01-02"),
			LaborRows:     len(g.Labor),
			EquipmentRows: len(g.Equipment),
		}
		for _, l := range g.Labor {
			p.TotalRegHours += l.RegularHours
			p.TotalOTHours += l.OvertimeHours
		}
		for _, e := range g.Equipment {
			p.TotalUsageHrs += e.UsageHours
		}
		previews = append(previews, p)
	}
	return previews, nil
}

// Commit runs the pipeline and stores each group as a draft ticket.
// Every group is its own transaction; a failure mid-run stops the run
// but leaves earlier groups committed, and the result names the group
// that failed.
func (s *ImportService) Commit(ctx context.Context, profileName string, file io.Reader, format importer.Format) (*dtos.ImportRunResult, error) {
	groups, err := s.groups(ctx, profileName, file, format)
	if err != nil {
		s.metrics.ImportRunsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	result := &dtos.ImportRunResult{Profile: profileName}

	for _, g := range groups {
		ticket := &gormModels.FieldTicket{
			TicketNumber: g.TicketNumber,
			JobNumber:    g.JobNumber,
			TicketDate:   g.TicketDate,
			Status:       constants.TicketStatusDraft,
		}

		labor := make([]gormModels.LaborItem, 0, len(g.Labor))
		for _, l := range g.Labor {
			labor = append(labor, gormModels.LaborItem{
				TicketNumber:  g.TicketNumber,
				CrewName:      l.CrewName,
				Trade:         l.Trade,
				RegularHours:  l.RegularHours,
				OvertimeHours: l.OvertimeHours,
				Subsistence:   l.Subsistence,
			})
		}
		equipment := make([]gormModels.EquipmentItem, 0, len(g.Equipment))
		for _, e := range g.Equipment {
			equipment = append(equipment, gormModels.EquipmentItem{
				TicketNumber:  g.TicketNumber,
				UnitNumber:    e.UnitNumber,
				EquipmentName: e.EquipmentName,
				UsageHours:    e.UsageHours,
			})
		}

		if err := s.tickets.CreateWithItems(ctx, ticket, labor, equipment, nil); err != nil {
			logging.Error("Import group commit failed",
				"profile", profileName,
				"group_key", g.Key,
				"committed_so_far", result.GroupsCommitted,
				"error", err,
			)
			result.FailedGroup = g.Key
			s.metrics.ImportRunsTotal.WithLabelValues("partial").Inc()
			return result, err
		}

		result.GroupsCommitted++
		result.TicketNumbers = append(result.TicketNumbers, g.TicketNumber)
		result.LaborRows += len(labor)
		result.EquipmentRows += len(equipment)

		s.metrics.TicketsCreatedTotal.WithLabelValues("import").Inc()
		s.metrics.RowsImportedTotal.WithLabelValues("labor").Add(float64(len(labor)))
		s.metrics.RowsImportedTotal.WithLabelValues("equipment").Add(float64(len(equipment)))
	}

	s.metrics.ImportRunsTotal.WithLabelValues("success").Inc()
	logging.Info("Import run committed",
		"profile", profileName,
		"groups", result.GroupsCommitted,
		"labor_rows", result.LaborRows,
		"equipment_rows", result.EquipmentRows,
	)
	return result, nil
}
