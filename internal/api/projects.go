package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

// ListProjects returns all projects for the authenticated user.
func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	if err := c.do(ctx, c.defaultClient, http.MethodGet, "/projects", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProject fetches a single project.
func (c *Client) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	var out domain.Project
	if err := c.do(ctx, c.defaultClient, http.MethodGet, fmt.Sprintf("/projects/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProject creates a project and returns the canonical record with its
// backend-assigned id.
func (c *Client) CreateProject(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error) {
	var out domain.Project
	if err := c.do(ctx, c.defaultClient, http.MethodPost, "/projects", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProject applies a partial edit and returns the record as persisted.
// Callers replace their local copy with it rather than merging.
func (c *Client) UpdateProject(ctx context.Context, id int64, req domain.UpdateProjectRequest) (*domain.Project, error) {
	var out domain.Project
	if err := c.do(ctx, c.defaultClient, http.MethodPut, fmt.Sprintf("/projects/%d", id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject removes a project. Callers drop the record from local caches
// only after this resolves.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, c.defaultClient, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, nil, nil)
}
