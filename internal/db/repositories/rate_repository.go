package repositories

import (
	"context"

	"fieldflow/backoffice/internal/constants"
	"fieldflow/backoffice/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type RateRepository struct {
	db *sqlx.DB
}

func NewRateRepository(db *sqlx.DB) *RateRepository {
	return &RateRepository{db}
}

func (r *RateRepository) InsertSheet(ctx context.Context, sheet *entities.RateSheet) error {
	return r.db.QueryRowxContext(ctx, constants.InsertRateSheet,
		sheet.RateListName,
		sheet.RateType,
		sheet.EffectiveDate,
		sheet.ExpiryDate,
	).StructScan(sheet)
}

func (r *RateRepository) ListSheets(ctx context.Context) ([]entities.RateSheet, error) {
	var sheets []entities.RateSheet
	if err := r.db.SelectContext(ctx, &sheets, constants.ListRateSheets); err != nil {
		return nil, err
	}
	return sheets, nil
}

func (r *RateRepository) InsertItem(ctx context.Context, item *entities.RateItem) error {
	return r.db.QueryRowxContext(ctx, constants.InsertRateItem,
		item.RateListName,
		item.ItemType,
		item.ItemName,
		item.Unit,
		item.RegularRate,
		item.OTRate,
		item.GLCodeRevenue,
	).StructScan(item)
}

func (r *RateRepository) ListItems(ctx context.Context, rateListName string) ([]entities.RateItem, error) {
	var items []entities.RateItem
	if err := r.db.SelectContext(ctx, &items, constants.ListRateItemsBySheet, rateListName); err != nil {
		return nil, err
	}
	return items, nil
}
