package dtos

// APIResponse is the standard envelope for every JSON endpoint.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// ImportGroupPreview is one would-be draft ticket in a preview response.
type ImportGroupPreview struct {
	GroupKey       string  `json:"group_key"`
	TicketNumber   string  `json:"ticket_number"`
	JobNumber      string  `json:"job_number"`
	TicketDate     string  `json:"ticket_date"`
	LaborRows      int     `json:"labor_rows"`
	EquipmentRows  int     `json:"equipment_rows"`
	TotalRegHours  float64 `json:"total_reg_hours"`
	TotalOTHours   float64 `json:"total_ot_hours"`
	TotalUsageHrs  float64 `json:"total_usage_hours"`
}

// ImportRunResult summarizes a committed import run. On a mid-run
// failure GroupsCommitted reflects the groups already stored; they stay
// committed.
type ImportRunResult struct {
	Profile         string   `json:"profile"`
	GroupsCommitted int      `json:"groups_committed"`
	TicketNumbers   []string `json:"ticket_numbers"`
	LaborRows       int      `json:"labor_rows"`
	EquipmentRows   int      `json:"equipment_rows"`
	FailedGroup     string   `json:"failed_group,omitempty"`
}

// DashboardSummary mirrors the executive dashboard KPIs.
type DashboardSummary struct {
	ActiveJobs     int64            `json:"active_jobs"`
	TicketsMonth   int64            `json:"tickets_this_month"`
	PendingDrafts  int64            `json:"pending_drafts"`
	RecentLEMs     []LEMSummary     `json:"recent_lems"`
	DailyManHours  []DailyManHours  `json:"daily_man_hours"`
}

type LEMSummary struct {
	LEMNumber   string `json:"lem_number"`
	JobNumber   string `json:"job_number"`
	Status      string `json:"status"`
	LEMDate     string `json:"lem_date"`
	TicketCount int    `json:"ticket_count"`
}

type DailyManHours struct {
	Date       string  `json:"date"`
	TotalHours float64 `json:"total_hours"`
}

type SessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}
