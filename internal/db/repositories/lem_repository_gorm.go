package repositories

import (
	"context"
	"fmt"

	gormModels "fieldflow/backoffice/internal/models/gorm"

	"gorm.io/gorm"
)

type LEMRepositoryGORM struct {
	db *gorm.DB
}

func NewLEMRepositoryGORM(db *gorm.DB) *LEMRepositoryGORM {
	return &LEMRepositoryGORM{db: db}
}

// CreateWithTickets inserts the LEM header and links the selected
// tickets in one transaction. Tickets already bundled elsewhere are
// left untouched; LinkedCount on return tells the caller how many rows
// actually attached.
func (r *LEMRepositoryGORM) CreateWithTickets(ctx context.Context, lem *gormModels.LEM, ticketNumbers []string) (int64, error) {
	var linked int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(lem).Error; err != nil {
			return fmt.Errorf("insert lem header: %w", err)
		}
		if len(ticketNumbers) == 0 {
			return nil
		}
		res := tx.Model(&gormModels.FieldTicket{}).
			Where("ticket_number IN ? AND lem_id IS NULL", ticketNumbers).
			Update("lem_id", lem.ID)
		if res.Error != nil {
			return fmt.Errorf("link tickets: %w", res.Error)
		}
		linked = res.RowsAffected
		return nil
	})
	return linked, err
}

func (r *LEMRepositoryGORM) GetByNumber(ctx context.Context, lemNumber string) (*gormModels.LEM, error) {
	var lem gormModels.LEM
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		Where("lem_number = ?", lemNumber).
		First(&lem).Error
	if err != nil {
		return nil, err
	}
	return &lem, nil
}

func (r *LEMRepositoryGORM) ListRecent(ctx context.Context, limit int) ([]gormModels.LEM, error) {
	var lems []gormModels.LEM
	err := r.db.WithContext(ctx).
		Preload("Tickets").
		Order("created_at DESC").
		Limit(limit).
		Find(&lems).Error
	return lems, err
}

func (r *LEMRepositoryGORM) UpdateStatus(ctx context.Context, lemNumber, status string) error {
	return r.db.WithContext(ctx).
		Model(&gormModels.LEM{}).
		Where("lem_number = ?", lemNumber).
		Update("status", status).Error
}
