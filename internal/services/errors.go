package services

import "errors"

var (
	ErrProfileNotFound  = errors.New("import profile not found")
	ErrDuplicateProfile = errors.New("an import profile with that name already exists")
	ErrInvalidMapping   = errors.New("mapping binds neither a crew name nor a unit number column")

	ErrTicketNotFound = errors.New("ticket not found")
	ErrLEMNotFound    = errors.New("lem not found")
	ErrNoTickets      = errors.New("a lem needs at least one ticket")
)
