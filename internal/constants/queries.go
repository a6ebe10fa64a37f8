package constants

const (
	InsertJob = `
	INSERT INTO master_project (
		job_number,
		project_name,
		client_name,
		location_name,
		lsd,
		afe_number,
		po_number,
		assigned_pm,
		status
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at, updated_at;
	`

	GetJobByNumber = `
	SELECT * FROM master_project WHERE job_number = $1
	`

	ListJobs = `
	SELECT * FROM master_project ORDER BY created_at DESC
	`

	ListActiveJobs = `
	SELECT * FROM master_project WHERE status = 'Active' ORDER BY created_at DESC
	`

	InsertClient = `
	INSERT INTO master_client (
		client_name,
		email,
		phone,
		address,
		billing_terms
	)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at;
	`

	ListClients = `
	SELECT * FROM master_client ORDER BY created_at DESC
	`

	InsertRateSheet = `
	INSERT INTO master_rate_list (
		rate_list_name,
		rate_type,
		effective_date,
		expiry_date
	)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at;
	`

	ListRateSheets = `
	SELECT * FROM master_rate_list ORDER BY created_at DESC
	`

	InsertRateItem = `
	INSERT INTO master_rate_details (
		rate_list_name,
		item_type,
		item_name,
		unit,
		regular_rate,
		ot_rate,
		gl_code_revenue
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id;
	`

	ListRateItemsBySheet = `
	SELECT * FROM master_rate_details WHERE rate_list_name = $1 ORDER BY item_type, item_name
	`

	GetStatusByApiKey = `
	SELECT * FROM api_keys WHERE key = $1
	`
)
