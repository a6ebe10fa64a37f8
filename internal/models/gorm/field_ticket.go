package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FieldTicket is a ticket header. Line items hang off ticket_number, the
// operator-facing unique identifier, not the surrogate id.
type FieldTicket struct {
	ID               string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	TicketNumber     string    `gorm:"column:ticket_number;uniqueIndex;type:varchar(100);not null" json:"ticket_number"`
	JobNumber        string    `gorm:"column:job_number;index;type:varchar(50)" json:"job_number"`
	TicketDate       time.Time `gorm:"column:ticket_date;index" json:"ticket_date"`
	AFENumber        string    `gorm:"column:afe_number;type:varchar(50)" json:"afe_number"`
	PONumber         string    `gorm:"column:po_number;type:varchar(50)" json:"po_number"`
	MajorCode        string    `gorm:"column:major_code;type:varchar(50)" json:"major_code"`
	MinorCode        string    `gorm:"column:minor_code;type:varchar(50)" json:"minor_code"`
	WorkDescription  string    `gorm:"column:work_description;type:text" json:"work_description"`
	InternalComments string    `gorm:"column:internal_comments;type:text" json:"internal_comments"`
	Status           string    `gorm:"column:status;index;type:varchar(30)" json:"status"`
	LEMID            *string   `gorm:"column:lem_id;index;type:uuid" json:"lem_id"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Labor     []LaborItem     `gorm:"foreignKey:TicketNumber;references:TicketNumber" json:"labor,omitempty"`
	Equipment []EquipmentItem `gorm:"foreignKey:TicketNumber;references:TicketNumber" json:"equipment,omitempty"`
	Material  []MaterialItem  `gorm:"foreignKey:TicketNumber;references:TicketNumber" json:"material,omitempty"`
}

func (FieldTicket) TableName() string {
	return "field_tickets"
}

func (t *FieldTicket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
