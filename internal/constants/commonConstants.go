package constants

type APIStatus string

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"
)

// Ticket lifecycle statuses
const (
	TicketStatusDraft    = "Draft"
	TicketStatusCreated  = "Ticket Created"
	TicketStatusApproved = "Approved"
)

// Job statuses
const (
	JobStatusActive    = "Active"
	JobStatusCompleted = "Completed"
	JobStatusPending   = "Pending"
)

// LEM statuses
const (
	LEMStatusGenerated = "Generated"
	LEMStatusExported  = "Exported"
)

// Defaults applied by the row transformer
const (
	DefaultTrade         = "Laborer"
	DefaultEquipmentName = "Equipment"
	UnknownJobNumber     = "UnknownJob"
)

type CacheKey string

const (
	CachePrefixDashboard  CacheKey = "DASHBOARD::"
	CachePrefixActiveJobs CacheKey = "ACTIVE_JOBS::"
	CachePrefixRateSheet  CacheKey = "RATE_SHEET::"
)

const (
	DashboardCacheTTLSeconds = 60
	SessionTTLHours          = 12
)
