package repositories

import (
	"context"

	"fieldflow/backoffice/internal/constants"
	"fieldflow/backoffice/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type ClientRepository struct {
	db *sqlx.DB
}

func NewClientRepository(db *sqlx.DB) *ClientRepository {
	return &ClientRepository{db}
}

func (r *ClientRepository) InsertClient(ctx context.Context, client *entities.Client) error {
	return r.db.QueryRowxContext(ctx, constants.InsertClient,
		client.ClientName,
		client.Email,
		client.Phone,
		client.Address,
		client.BillingTerms,
	).StructScan(client)
}

func (r *ClientRepository) ListAll(ctx context.Context) ([]entities.Client, error) {
	var clients []entities.Client
	if err := r.db.SelectContext(ctx, &clients, constants.ListClients); err != nil {
		return nil, err
	}
	return clients, nil
}
