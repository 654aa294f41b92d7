package domain

import "time"

// Milestone represents a project milestone with progress tracking.
type Milestone struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	ProjectID      int64      `json:"project_id"`
	Status         string     `json:"status"` // not_started, in_progress, completed, paused
	Priority       string     `json:"priority"`
	Progress       int        `json:"progress"` // 0..100
	DueDate        *time.Time `json:"due_date,omitempty"`
	CompletedDate  *time.Time `json:"completed_date,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EstimatedHours *float64   `json:"estimated_hours,omitempty"`
	ActualHours    *float64   `json:"actual_hours,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	IsBillable     bool       `json:"is_billable"`
	HourlyRate     *float64   `json:"hourly_rate,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
	Tasks          []Task     `json:"tasks,omitempty"`
}

// Milestone status constants
const (
	MilestoneNotStarted = "not_started"
	MilestoneInProgress = "in_progress"
	MilestoneCompleted  = "completed"
	MilestonePaused     = "paused"
)

// CreateMilestoneRequest represents data needed to create a milestone.
type CreateMilestoneRequest struct {
	Title          string     `json:"title"`
	Description    *string    `json:"description,omitempty"`
	ProjectID      int64      `json:"project_id"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	Progress       int        `json:"progress"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EstimatedHours *float64   `json:"estimated_hours,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	IsBillable     bool       `json:"is_billable"`
	HourlyRate     *float64   `json:"hourly_rate,omitempty"`
}

// UpdateMilestoneRequest represents a partial milestone edit.
type UpdateMilestoneRequest struct {
	Title          *string    `json:"title,omitempty"`
	Description    *string    `json:"description,omitempty"`
	Status         *string    `json:"status,omitempty"`
	Priority       *string    `json:"priority,omitempty"`
	Progress       *int       `json:"progress,omitempty"`
	DueDate        *time.Time `json:"due_date,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EstimatedHours *float64   `json:"estimated_hours,omitempty"`
	ActualHours    *float64   `json:"actual_hours,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	IsBillable     *bool      `json:"is_billable,omitempty"`
	HourlyRate     *float64   `json:"hourly_rate,omitempty"`
}
