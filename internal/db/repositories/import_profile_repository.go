package repositories

import (
	"context"

	gormModels "fieldflow/backoffice/internal/models/gorm"

	"gorm.io/gorm"
)

type ImportProfileRepository struct {
	db *gorm.DB
}

func NewImportProfileRepository(db *gorm.DB) *ImportProfileRepository {
	return &ImportProfileRepository{db: db}
}

func (r *ImportProfileRepository) Create(ctx context.Context, profile *gormModels.ImportProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *ImportProfileRepository) GetByName(ctx context.Context, name string) (*gormModels.ImportProfile, error) {
	var profile gormModels.ImportProfile
	err := r.db.WithContext(ctx).
		Where("map_name = ?", name).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ImportProfileRepository) ListAll(ctx context.Context) ([]gormModels.ImportProfile, error) {
	var profiles []gormModels.ImportProfile
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, err
}

// Exists is the duplicate-name pre-check used by save; the unique index
// still backs it up under concurrent writers.
func (r *ImportProfileRepository) Exists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.ImportProfile{}).
		Where("map_name = ?", name).
		Count(&count).Error
	return count > 0, err
}
