package dtos

// CreateJobRequest registers a master project.
type CreateJobRequest struct {
	JobNumber    string `json:"job_number"`
	ProjectName  string `json:"project_name"`
	ClientName   string `json:"client_name"`
	LocationName string `json:"location_name"`
	LSD          string `json:"lsd"`
	AFENumber    string `json:"afe_number"`
	PONumber     string `json:"po_number"`
	AssignedPM   string `json:"assigned_pm"`
	Status       string `json:"status"`
}

type CreateClientRequest struct {
	ClientName   string `json:"client_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	BillingTerms string `json:"billing_terms"`
}

type CreateRateSheetRequest struct {
	RateListName  string `json:"rate_list_name"`
	RateType      string `json:"rate_type"`
	EffectiveDate string `json:"effective_date"`
	ExpiryDate    string `json:"expiry_date"`
}

type AddRateItemRequest struct {
	ItemType      string  `json:"item_type"`
	ItemName      string  `json:"item_name"`
	Unit          string  `json:"unit"`
	RegularRate   float64 `json:"regular_rate"`
	OTRate        float64 `json:"ot_rate"`
	GLCodeRevenue string  `json:"gl_code_revenue"`
}

// CreateTicketRequest is the manual time-ticket entry form: one header
// plus the three line sections. Rows with a blank primary cell are
// skipped, matching the form's spacer-row behavior.
type CreateTicketRequest struct {
	TicketNumber     string `json:"ticket_number"`
	JobNumber        string `json:"job_number"`
	TicketDate       string `json:"ticket_date"`
	AFENumber        string `json:"afe_number"`
	PONumber         string `json:"po_number"`
	MajorCode        string `json:"major_code"`
	MinorCode        string `json:"minor_code"`
	WorkDescription  string `json:"work_description"`
	InternalComments string `json:"internal_comments"`

	Labor     []LaborRowRequest     `json:"labor"`
	Equipment []EquipmentRowRequest `json:"equipment"`
	Material  []MaterialRowRequest  `json:"material"`
}

type LaborRowRequest struct {
	CrewName      string  `json:"crew_name"`
	Trade         string  `json:"trade"`
	RegularHours  float64 `json:"regular_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	TravelHours   float64 `json:"travel_hours"`
	Subsistence   bool    `json:"subsistence"`
}

type EquipmentRowRequest struct {
	UnitNumber    string  `json:"unit_number"`
	EquipmentName string  `json:"equipment_name"`
	OperatorName  string  `json:"operator_name"`
	UsageHours    float64 `json:"usage_hours"`
}

type MaterialRowRequest struct {
	ItemDescription string  `json:"item_description"`
	Quantity        float64 `json:"quantity"`
	Rate            float64 `json:"rate"`
}

// CreateImportProfileRequest saves a column mapping. Unmapped logical
// fields are null, not sentinel strings.
type CreateImportProfileRequest struct {
	MapName        string          `json:"map_name"`
	HeaderRowIndex int             `json:"header_row_idx"`
	Mapping        MappingDocument `json:"mapping"`
}

// MappingDocument is the wire form of importer.Mapping.
type MappingDocument struct {
	TicketNumber  *string `json:"ticket_num"`
	JobNumber     *string `json:"job_num"`
	Date          *string `json:"date"`
	CrewName      *string `json:"crew_name"`
	Trade         *string `json:"trade"`
	RegularHours  *string `json:"reg_hrs"`
	OvertimeHours *string `json:"ot_hrs"`
	UnitNumber    *string `json:"unit_num"`
	EquipmentName *string `json:"eq_name"`
	UsageHours    *string `json:"usage_hrs"`
}

type CreateLEMRequest struct {
	LEMNumber     string   `json:"lem_number"`
	JobNumber     string   `json:"job_number"`
	PeriodStart   string   `json:"period_start"`
	PeriodEnd     string   `json:"period_end"`
	TicketNumbers []string `json:"ticket_numbers"`
}

type CreateSessionRequest struct {
	OperatorID string `json:"operator_id"`
	Name       string `json:"name"`
}
