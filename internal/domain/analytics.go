package domain

// AnalyticsSummary aggregates dashboard numbers for a time range. The backend
// computes everything; shapes here mirror its response document.
type AnalyticsSummary struct {
	TotalRevenue    float64        `json:"total_revenue"`
	PendingRevenue  float64        `json:"pending_revenue"`
	ActiveProjects  int            `json:"active_projects"`
	CompletedTasks  int            `json:"completed_tasks"`
	PendingTasks    int            `json:"pending_tasks"`
	HoursTracked    float64        `json:"hours_tracked"`
	InvoicesByState map[string]int `json:"invoices_by_status,omitempty"`
	Extra           map[string]any `json:"extra,omitempty"`
}

// RevenuePoint is a single day on the revenue trend.
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// RevenueTrend is returned by the revenue-trend endpoint.
type RevenueTrend struct {
	Days   int            `json:"days"`
	Points []RevenuePoint `json:"points"`
}

// ProjectPerformance summarizes per-project outcomes.
type ProjectPerformance struct {
	ProjectID      int64   `json:"project_id"`
	Title          string  `json:"title"`
	Revenue        float64 `json:"revenue"`
	HoursTracked   float64 `json:"hours_tracked"`
	TasksCompleted int     `json:"tasks_completed"`
	TasksTotal     int     `json:"tasks_total"`
}

// UploadResult is returned by the file upload endpoint.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Upload type discriminators
const (
	UploadAvatar  = "avatar"
	UploadProject = "project"
	UploadTask    = "task"
)
