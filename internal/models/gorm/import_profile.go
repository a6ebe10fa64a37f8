package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImportProfile is a saved column-mapping configuration for one client
// spreadsheet layout. MappingJSON holds the mapping document; profiles
// are immutable once saved.
type ImportProfile struct {
	ID             string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	MapName        string    `gorm:"column:map_name;uniqueIndex;type:varchar(100);not null" json:"map_name"`
	HeaderRowIndex int       `gorm:"column:header_row_idx;not null" json:"header_row_idx"`
	MappingJSON    string    `gorm:"column:mapping_data;type:text;not null" json:"mapping_data"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ImportProfile) TableName() string {
	return "client_import_maps"
}

func (p *ImportProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
