package importer

import "errors"

var (
	// ErrUnreadableFile is returned when the uploaded bytes cannot be
	// decoded in the declared format.
	ErrUnreadableFile = errors.New("file could not be read in the declared format")

	// ErrInsufficientGroupingKey is returned before any row is processed
	// when neither a ticket number column nor both job number and date
	// columns are mapped.
	ErrInsufficientGroupingKey = errors.New("mapping must include a ticket number column, or both job number and date columns")
)
