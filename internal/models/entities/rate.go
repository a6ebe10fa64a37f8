package entities

import "time"

type RateSheet struct {
	ID            string    `db:"id" json:"id"`
	RateListName  string    `db:"rate_list_name" json:"rate_list_name"`
	RateType      string    `db:"rate_type" json:"rate_type"`
	EffectiveDate time.Time `db:"effective_date" json:"effective_date"`
	ExpiryDate    time.Time `db:"expiry_date" json:"expiry_date"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type RateItem struct {
	ID            string  `db:"id" json:"id"`
	RateListName  string  `db:"rate_list_name" json:"rate_list_name"`
	ItemType      string  `db:"item_type" json:"item_type"`
	ItemName      string  `db:"item_name" json:"item_name"`
	Unit          string  `db:"unit" json:"unit"`
	RegularRate   float64 `db:"regular_rate" json:"regular_rate"`
	OTRate        float64 `db:"ot_rate" json:"ot_rate"`
	GLCodeRevenue string  `db:"gl_code_revenue" json:"gl_code_revenue"`
}
