package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

// ListWorkLogs returns work logs, optionally filtered by task and/or project.
func (c *Client) ListWorkLogs(ctx context.Context, taskID, projectID *int64) ([]domain.WorkLog, error) {
	query := url.Values{}
	if taskID != nil {
		query.Set("task_id", strconv.FormatInt(*taskID, 10))
	}
	if projectID != nil {
		query.Set("project_id", strconv.FormatInt(*projectID, 10))
	}
	var out []domain.WorkLog
	if err := c.do(ctx, c.defaultClient, http.MethodGet, "/work-logs", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetWorkLog fetches a single work log.
func (c *Client) GetWorkLog(ctx context.Context, id int64) (*domain.WorkLog, error) {
	var out domain.WorkLog
	if err := c.do(ctx, c.defaultClient, http.MethodGet, fmt.Sprintf("/work-logs/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateWorkLog logs a block of work and returns the canonical record.
func (c *Client) CreateWorkLog(ctx context.Context, req domain.CreateWorkLogRequest) (*domain.WorkLog, error) {
	var out domain.WorkLog
	if err := c.do(ctx, c.defaultClient, http.MethodPost, "/work-logs", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateWorkLog applies a partial edit and returns the record as persisted.
func (c *Client) UpdateWorkLog(ctx context.Context, id int64, req domain.UpdateWorkLogRequest) (*domain.WorkLog, error) {
	var out domain.WorkLog
	if err := c.do(ctx, c.defaultClient, http.MethodPut, fmt.Sprintf("/work-logs/%d", id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteWorkLog removes a work log.
func (c *Client) DeleteWorkLog(ctx context.Context, id int64) error {
	return c.do(ctx, c.defaultClient, http.MethodDelete, fmt.Sprintf("/work-logs/%d", id), nil, nil, nil)
}

// UpdateWorkLogStatus moves a work log through its approval lifecycle. The
// backend acknowledges with a message only.
func (c *Client) UpdateWorkLogStatus(ctx context.Context, id int64, status string) (*domain.MessageResponse, error) {
	query := url.Values{}
	query.Set("new_status", status)
	var out domain.MessageResponse
	if err := c.do(ctx, c.defaultClient, http.MethodPatch, fmt.Sprintf("/work-logs/%d/status", id), query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
