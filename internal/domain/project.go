package domain

import "time"

// Project represents a project record owned by the backend.
type Project struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"` // active, completed, paused
	ClientName  *string    `json:"client_name,omitempty"`
	Budget      *float64   `json:"budget,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Project status constants
const (
	ProjectActive    = "active"
	ProjectCompleted = "completed"
	ProjectPaused    = "paused"
)

// CreateProjectRequest represents data needed to create a project.
type CreateProjectRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	ClientName  *string    `json:"client_name,omitempty"`
	Budget      *float64   `json:"budget,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// UpdateProjectRequest represents a partial project edit.
type UpdateProjectRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	ClientName  *string    `json:"client_name,omitempty"`
	Budget      *float64   `json:"budget,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}
