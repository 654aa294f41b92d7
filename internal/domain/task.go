package domain

import "time"

// Task represents a task record, optionally attached to a project or milestone.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`   // pending, in_progress, completed
	Priority    string     `json:"priority"` // low, medium, high
	ProjectID   *int64     `json:"project_id,omitempty"`
	MilestoneID *int64     `json:"milestone_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	TimeTracked int        `json:"time_tracked"` // seconds
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Task status constants
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
)

// Priority constants shared by tasks, milestones and notifications
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// CreateTaskRequest represents data needed to create a task.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	ProjectID   *int64     `json:"project_id,omitempty"`
	MilestoneID *int64     `json:"milestone_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskRequest represents a partial task edit.
type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	ProjectID   *int64     `json:"project_id,omitempty"`
	MilestoneID *int64     `json:"milestone_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	TimeTracked *int       `json:"time_tracked,omitempty"`
}
