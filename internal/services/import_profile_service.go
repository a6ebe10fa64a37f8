package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"fieldflow/backoffice/internal/db/repositories"
	"fieldflow/backoffice/internal/importer"
	"fieldflow/backoffice/internal/logging"
	"fieldflow/backoffice/internal/models/dtos"
	gormModels "fieldflow/backoffice/internal/models/gorm"
)

// ImportProfileService manages saved column-mapping profiles. Profiles
// are immutable; a new layout gets a new name.
type ImportProfileService struct {
	profiles *repositories.ImportProfileRepository
}

func NewImportProfileService(profiles *repositories.ImportProfileRepository) *ImportProfileService {
	return &ImportProfileService{profiles: profiles}
}

// Save validates and persists a mapping profile. A mapping that binds
// neither line-item primary column is rejected before it ever reaches
// storage.
func (s *ImportProfileService) Save(ctx context.Context, req dtos.CreateImportProfileRequest) (*gormModels.ImportProfile, error) {
	name := strings.TrimSpace(req.MapName)
	if name == "" {
		return nil, fmt.Errorf("profile name is required")
	}
	if req.HeaderRowIndex < 0 {
		return nil, fmt.Errorf("header row index must not be negative")
	}

	mapping := MappingFromDocument(req.Mapping)
	if !mapping.Describes() {
		return nil, ErrInvalidMapping
	}

	exists, err := s.profiles.Exists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("check profile name: %w", err)
	}
	if exists {
		return nil, ErrDuplicateProfile
	}

	data, err := json.Marshal(mapping)
	if err != nil {
		return nil, fmt.Errorf("encode mapping: %w", err)
	}

	profile := &gormModels.ImportProfile{
		MapName:        name,
		HeaderRowIndex: req.HeaderRowIndex,
		MappingJSON:    string(data),
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("store profile: %w", err)
	}

	logging.Info("Import profile saved", "map_name", name, "header_row_idx", req.HeaderRowIndex)
	return profile, nil
}

func (s *ImportProfileService) List(ctx context.Context) ([]gormModels.ImportProfile, error) {
	return s.profiles.ListAll(ctx)
}

// Get loads a profile and decodes its mapping document.
func (s *ImportProfileService) Get(ctx context.Context, name string) (*gormModels.ImportProfile, importer.Mapping, error) {
	profile, err := s.profiles.GetByName(ctx, name)
	if err != nil {
		return nil, importer.Mapping{}, ErrProfileNotFound
	}

	var mapping importer.Mapping
	if err := json.Unmarshal([]byte(profile.MappingJSON), &mapping); err != nil {
		return nil, importer.Mapping{}, fmt.Errorf("decode mapping for %q: %w", name, err)
	}
	return profile, mapping, nil
}

// MappingFromDocument converts the wire mapping document into the
// importer's optional-field form. A nil or empty pointer stays unmapped.
func MappingFromDocument(doc dtos.MappingDocument) importer.Mapping {
	field := func(p *string) importer.Field {
		if p == nil {
			return importer.Field{}
		}
		return importer.MapTo(strings.TrimSpace(*p))
	}
	return importer.Mapping{
		TicketNumber:  field(doc.TicketNumber),
		JobNumber:     field(doc.JobNumber),
		Date:          field(doc.Date),
		CrewName:      field(doc.CrewName),
		Trade:         field(doc.Trade),
		RegularHours:  field(doc.RegularHours),
		OvertimeHours: field(doc.OvertimeHours),
		UnitNumber:    field(doc.UnitNumber),
		EquipmentName: field(doc.EquipmentName),
		UsageHours:    field(doc.UsageHours),
	}
}
