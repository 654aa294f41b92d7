package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

// ListMilestones returns milestones, optionally filtered to one project.
func (c *Client) ListMilestones(ctx context.Context, projectID *int64) ([]domain.Milestone, error) {
	query := url.Values{}
	if projectID != nil {
		query.Set("project_id", strconv.FormatInt(*projectID, 10))
	}
	var out []domain.Milestone
	if err := c.do(ctx, c.defaultClient, http.MethodGet, "/milestones", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMilestone fetches a single milestone.
func (c *Client) GetMilestone(ctx context.Context, id int64) (*domain.Milestone, error) {
	var out domain.Milestone
	if err := c.do(ctx, c.defaultClient, http.MethodGet, fmt.Sprintf("/milestones/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMilestone creates a milestone and returns the canonical record.
func (c *Client) CreateMilestone(ctx context.Context, req domain.CreateMilestoneRequest) (*domain.Milestone, error) {
	var out domain.Milestone
	if err := c.do(ctx, c.defaultClient, http.MethodPost, "/milestones", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMilestone applies a partial edit and returns the record as persisted.
func (c *Client) UpdateMilestone(ctx context.Context, id int64, req domain.UpdateMilestoneRequest) (*domain.Milestone, error) {
	var out domain.Milestone
	if err := c.do(ctx, c.defaultClient, http.MethodPut, fmt.Sprintf("/milestones/%d", id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteMilestone removes a milestone.
func (c *Client) DeleteMilestone(ctx context.Context, id int64) error {
	return c.do(ctx, c.defaultClient, http.MethodDelete, fmt.Sprintf("/milestones/%d", id), nil, nil, nil)
}

// UpdateMilestoneStatus changes the milestone lifecycle state. The backend
// acknowledges with a message only.
func (c *Client) UpdateMilestoneStatus(ctx context.Context, id int64, status string) (*domain.MessageResponse, error) {
	query := url.Values{}
	query.Set("new_status", status)
	var out domain.MessageResponse
	if err := c.do(ctx, c.defaultClient, http.MethodPatch, fmt.Sprintf("/milestones/%d/status", id), query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMilestoneProgress sets completion percentage (0..100). The backend
// acknowledges with a message only.
func (c *Client) UpdateMilestoneProgress(ctx context.Context, id int64, progress int) (*domain.MessageResponse, error) {
	query := url.Values{}
	query.Set("progress", strconv.Itoa(progress))
	var out domain.MessageResponse
	if err := c.do(ctx, c.defaultClient, http.MethodPatch, fmt.Sprintf("/milestones/%d/progress", id), query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
