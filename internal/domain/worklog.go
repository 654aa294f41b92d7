package domain

import "time"

// WorkLog represents a logged block of work, possibly produced by the timer.
type WorkLog struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description,omitempty"`
	TaskID        *int64     `json:"task_id,omitempty"`
	ProjectID     *int64     `json:"project_id,omitempty"`
	HoursWorked   float64    `json:"hours_worked"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	AIExplanation *string    `json:"ai_explanation,omitempty"`
	IsAIGenerated bool       `json:"is_ai_generated"`
	IsBillable    bool       `json:"is_billable"`
	HourlyRate    *float64   `json:"hourly_rate,omitempty"`
	TotalAmount   *float64   `json:"total_amount,omitempty"`
	Status        string     `json:"status"` // logged, approved, rejected, pending
	Notes         *string    `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// Work log status constants
const (
	WorkLogLogged   = "logged"
	WorkLogApproved = "approved"
	WorkLogRejected = "rejected"
	WorkLogPending  = "pending"
)

// CreateWorkLogRequest represents data needed to log work.
type CreateWorkLogRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	TaskID      *int64     `json:"task_id,omitempty"`
	ProjectID   *int64     `json:"project_id,omitempty"`
	HoursWorked float64    `json:"hours_worked"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	IsBillable  bool       `json:"is_billable"`
	HourlyRate  *float64   `json:"hourly_rate,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

// UpdateWorkLogRequest represents a partial work log edit.
type UpdateWorkLogRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	HoursWorked *float64   `json:"hours_worked,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	IsBillable  *bool      `json:"is_billable,omitempty"`
	HourlyRate  *float64   `json:"hourly_rate,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}
