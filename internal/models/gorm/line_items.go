package gorm

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LaborItem struct {
	ID            string  `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	TicketNumber  string  `gorm:"column:ticket_number;index;type:varchar(100);not null" json:"ticket_number"`
	CrewName      string  `gorm:"column:crew_name;type:varchar(100);not null" json:"crew_name"`
	Trade         string  `gorm:"column:trade;type:varchar(50)" json:"trade"`
	RegularHours  float64 `gorm:"column:regular_hours" json:"regular_hours"`
	OvertimeHours float64 `gorm:"column:overtime_hours" json:"overtime_hours"`
	TravelHours   float64 `gorm:"column:travel_hours" json:"travel_hours"`
	Subsistence   bool    `gorm:"column:subsistence;default:false" json:"subsistence"`
}

func (LaborItem) TableName() string {
	return "field_labor"
}

func (i *LaborItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}

type EquipmentItem struct {
	ID            string  `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	TicketNumber  string  `gorm:"column:ticket_number;index;type:varchar(100);not null" json:"ticket_number"`
	UnitNumber    string  `gorm:"column:unit_number;type:varchar(50);not null" json:"unit_number"`
	EquipmentName string  `gorm:"column:equipment_name;type:varchar(100)" json:"equipment_name"`
	OperatorName  string  `gorm:"column:operator_name;type:varchar(100)" json:"operator_name"`
	UsageHours    float64 `gorm:"column:usage_hours" json:"usage_hours"`
}

func (EquipmentItem) TableName() string {
	return "field_equipment"
}

func (i *EquipmentItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}

type MaterialItem struct {
	ID              string  `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	TicketNumber    string  `gorm:"column:ticket_number;index;type:varchar(100);not null" json:"ticket_number"`
	ItemDescription string  `gorm:"column:item_description;type:text;not null" json:"item_description"`
	Quantity        float64 `gorm:"column:quantity" json:"quantity"`
	Rate            float64 `gorm:"column:rate" json:"rate"`
}

func (MaterialItem) TableName() string {
	return "field_material"
}

func (i *MaterialItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
