package constants

const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgInvalidBody     = "Invalid request body"
	ErrMsgMissingRequired = "Missing required field"
	ErrMsgNotFound        = "Record not found"
	ErrMsgDuplicate       = "A record with that identifier already exists"
	ErrMsgPersistence     = "Storage operation failed"
)
