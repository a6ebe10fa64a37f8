package repositories

import (
	"context"
	"fmt"
	"time"

	gormModels "fieldflow/backoffice/internal/models/gorm"

	"gorm.io/gorm"
)

type TicketRepositoryGORM struct {
	db *gorm.DB
}

func NewTicketRepositoryGORM(db *gorm.DB) *TicketRepositoryGORM {
	return &TicketRepositoryGORM{db: db}
}

// CreateWithItems stores a ticket header and its line items in one
// transaction, so a failed line insert never leaves an orphaned header.
func (r *TicketRepositoryGORM) CreateWithItems(
	ctx context.Context,
	ticket *gormModels.FieldTicket,
	labor []gormModels.LaborItem,
	equipment []gormModels.EquipmentItem,
	material []gormModels.MaterialItem,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ticket).Error; err != nil {
			return fmt.Errorf("insert ticket header: %w", err)
		}
		if len(labor) > 0 {
			if err := tx.Create(&labor).Error; err != nil {
				return fmt.Errorf("insert labor items: %w", err)
			}
		}
		if len(equipment) > 0 {
			if err := tx.Create(&equipment).Error; err != nil {
				return fmt.Errorf("insert equipment items: %w", err)
			}
		}
		if len(material) > 0 {
			if err := tx.Create(&material).Error; err != nil {
				return fmt.Errorf("insert material items: %w", err)
			}
		}
		return nil
	})
}

func (r *TicketRepositoryGORM) GetByNumber(ctx context.Context, ticketNumber string) (*gormModels.FieldTicket, error) {
	var ticket gormModels.FieldTicket
	err := r.db.WithContext(ctx).
		Preload("Labor").
		Preload("Equipment").
		Preload("Material").
		Where("ticket_number = ?", ticketNumber).
		First(&ticket).Error
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepositoryGORM) ListRecent(ctx context.Context, limit int) ([]gormModels.FieldTicket, error) {
	var tickets []gormModels.FieldTicket
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&tickets).Error
	return tickets, err
}

// ListUnassigned returns tickets for a job inside the period that are
// not yet bundled into a LEM.
func (r *TicketRepositoryGORM) ListUnassigned(ctx context.Context, jobNumber string, start, end time.Time) ([]gormModels.FieldTicket, error) {
	var tickets []gormModels.FieldTicket
	err := r.db.WithContext(ctx).
		Where("job_number = ? AND lem_id IS NULL AND ticket_date >= ? AND ticket_date <= ?", jobNumber, start, end).
		Order("ticket_date DESC").
		Find(&tickets).Error
	return tickets, err
}

func (r *TicketRepositoryGORM) UpdateStatus(ctx context.Context, ticketNumber, status string) error {
	return r.db.WithContext(ctx).
		Model(&gormModels.FieldTicket{}).
		Where("ticket_number = ?", ticketNumber).
		Update("status", status).Error
}

// DeleteWithItems removes the header and every line item in one
// transaction; no orphaned lines survive a header delete.
func (r *TicketRepositoryGORM) DeleteWithItems(ctx context.Context, ticketNumber string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_number = ?", ticketNumber).Delete(&gormModels.LaborItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ticket_number = ?", ticketNumber).Delete(&gormModels.EquipmentItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ticket_number = ?", ticketNumber).Delete(&gormModels.MaterialItem{}).Error; err != nil {
			return err
		}
		return tx.Where("ticket_number = ?", ticketNumber).Delete(&gormModels.FieldTicket{}).Error
	})
}

func (r *TicketRepositoryGORM) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.FieldTicket{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *TicketRepositoryGORM) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&gormModels.FieldTicket{}).
		Where("ticket_date >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *TicketRepositoryGORM) ListSince(ctx context.Context, since time.Time) ([]gormModels.FieldTicket, error) {
	var tickets []gormModels.FieldTicket
	err := r.db.WithContext(ctx).
		Where("ticket_date >= ?", since).
		Find(&tickets).Error
	return tickets, err
}

func (r *TicketRepositoryGORM) ListLaborByTicketNumbers(ctx context.Context, ticketNumbers []string) ([]gormModels.LaborItem, error) {
	if len(ticketNumbers) == 0 {
		return nil, nil
	}
	var items []gormModels.LaborItem
	err := r.db.WithContext(ctx).
		Where("ticket_number IN ?", ticketNumbers).
		Find(&items).Error
	return items, err
}
