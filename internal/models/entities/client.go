package entities

import "time"

type Client struct {
	ID           string    `db:"id" json:"id"`
	ClientName   string    `db:"client_name" json:"client_name"`
	Email        string    `db:"email" json:"email"`
	Phone        string    `db:"phone" json:"phone"`
	Address      string    `db:"address" json:"address"`
	BillingTerms string    `db:"billing_terms" json:"billing_terms"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
