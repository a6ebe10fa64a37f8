package entities

import "time"

type Job struct {
	ID           string    `db:"id" json:"id"`
	JobNumber    string    `db:"job_number" json:"job_number"`
	ProjectName  string    `db:"project_name" json:"project_name"`
	ClientName   string    `db:"client_name" json:"client_name"`
	LocationName string    `db:"location_name" json:"location_name"`
	LSD          string    `db:"lsd" json:"lsd"`
	AFENumber    string    `db:"afe_number" json:"afe_number"`
	PONumber     string    `db:"po_number" json:"po_number"`
	AssignedPM   string    `db:"assigned_pm" json:"assigned_pm"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
