package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gormModels "fieldflow/backoffice/internal/models/gorm"
)

var PgDB *gorm.DB

func InitPostgresORM() (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsnFromEnv()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := database.AutoMigrate(
		&gormModels.FieldTicket{},
		&gormModels.LaborItem{},
		&gormModels.EquipmentItem{},
		&gormModels.MaterialItem{},
		&gormModels.LEM{},
		&gormModels.ImportProfile{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	PgDB = database
	return database, nil
}
