package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

// GetAnalytics returns the dashboard summary for a time range in days.
func (c *Client) GetAnalytics(ctx context.Context, timeRange string) (*domain.AnalyticsSummary, error) {
	query := url.Values{}
	if timeRange == "" {
		timeRange = "30"
	}
	query.Set("time_range", timeRange)
	var out domain.AnalyticsSummary
	if err := c.do(ctx, c.defaultClient, http.MethodGet, "/analytics", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRevenueTrend returns the per-day revenue series for the last n days.
func (c *Client) GetRevenueTrend(ctx context.Context, days int) (*domain.RevenueTrend, error) {
	if days <= 0 {
		days = 30
	}
	query := url.Values{}
	query.Set("days", strconv.Itoa(days))
	var out domain.RevenueTrend
	if err := c.do(ctx, c.defaultClient, http.MethodGet, "/analytics/revenue-trend", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProjectPerformance returns per-project outcome summaries.
func (c *Client) GetProjectPerformance(ctx context.Context) ([]domain.ProjectPerformance, error) {
	var out []domain.ProjectPerformance
	if err := c.do(ctx, c.defaultClient, http.MethodGet, "/analytics/project-performance", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
