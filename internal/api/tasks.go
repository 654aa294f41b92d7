package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

// ListTasks returns tasks, optionally filtered to one project.
func (c *Client) ListTasks(ctx context.Context, projectID *int64) ([]domain.Task, error) {
	query := url.Values{}
	if projectID != nil {
		query.Set("project_id", strconv.FormatInt(*projectID, 10))
	}
	var out []domain.Task
	if err := c.do(ctx, c.defaultClient, http.MethodGet, "/tasks", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTask fetches a single task.
func (c *Client) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	var out domain.Task
	if err := c.do(ctx, c.defaultClient, http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTask creates a task and returns the canonical record.
func (c *Client) CreateTask(ctx context.Context, req domain.CreateTaskRequest) (*domain.Task, error) {
	var out domain.Task
	if err := c.do(ctx, c.defaultClient, http.MethodPost, "/tasks", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask applies a partial edit and returns the record as persisted.
func (c *Client) UpdateTask(ctx context.Context, id int64, req domain.UpdateTaskRequest) (*domain.Task, error) {
	var out domain.Task
	if err := c.do(ctx, c.defaultClient, http.MethodPut, fmt.Sprintf("/tasks/%d", id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	return c.do(ctx, c.defaultClient, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil, nil)
}
