package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LEM is a billing bundle grouping field tickets for one job over a
// period, exported to accounting software.
type LEM struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	LEMNumber   string    `gorm:"column:lem_number;uniqueIndex;type:varchar(100);not null" json:"lem_number"`
	JobNumber   string    `gorm:"column:job_number;index;type:varchar(50)" json:"job_number"`
	LEMDate     time.Time `gorm:"column:lem_date" json:"lem_date"`
	PeriodStart time.Time `gorm:"column:period_start" json:"period_start"`
	PeriodEnd   time.Time `gorm:"column:period_end" json:"period_end"`
	Status      string    `gorm:"column:status;type:varchar(30)" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Tickets []FieldTicket `gorm:"foreignKey:LEMID" json:"tickets,omitempty"`
}

func (LEM) TableName() string {
	return "lems"
}

func (l *LEM) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
