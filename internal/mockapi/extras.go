package mockapi

import (
	"fmt"
	"net/http"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

var uploadExtensions = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".doc":  true,
	".docx": true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

func (s *Server) generateContent(c *gin.Context) {
	var req domain.AIRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Tool == "" || req.Prompt == "" {
		validationErrors(c, "tool: field required", "prompt: field required")
		return
	}
	switch req.Tool {
	case domain.ToolProposal, domain.ToolContract, domain.ToolInvoice, domain.ToolTaskBreakdown:
	default:
		detail(c, http.StatusBadRequest, "Unknown tool")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acct := s.accounts[currentUserID(c)]
	if acct.user.UsageCount >= acct.user.UsageLimit {
		detail(c, http.StatusTooManyRequests, "Daily usage limit exceeded. Please upgrade your plan.")
		return
	}
	acct.user.UsageCount++

	c.JSON(http.StatusOK, domain.AIResponse{
		Result:     fmt.Sprintf("Generated %s for: %s", req.Tool, req.Prompt),
		UsageCount: acct.user.UsageCount,
		UsageLimit: acct.user.UsageLimit,
		Metadata:   map[string]any{"tool": req.Tool, "model": "mock"},
	})
}

func (s *Server) usageStats(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.accounts[currentUserID(c)].user
	remaining := u.UsageLimit - u.UsageCount
	if remaining < 0 {
		remaining = 0
	}
	c.JSON(http.StatusOK, domain.UsageStats{
		UsageCount:        u.UsageCount,
		UsageLimit:        u.UsageLimit,
		RemainingRequests: remaining,
		SubscriptionTier:  u.SubscriptionTier,
	})
}

func (s *Server) analyticsSummary(c *gin.Context) {
	timeRange := c.DefaultQuery("time_range", "30")
	days, err := strconv.Atoi(timeRange)
	if err != nil || days <= 0 {
		days = 30
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	s.mu.Lock()
	defer s.mu.Unlock()
	owner := currentUserID(c)

	summary := domain.AnalyticsSummary{InvoicesByState: map[string]int{}}
	for _, rec := range s.invoices {
		if rec.owner != owner {
			continue
		}
		summary.InvoicesByState[rec.rec.Status]++
		switch rec.rec.Status {
		case domain.InvoicePaid:
			if rec.rec.PaidDate == nil || rec.rec.PaidDate.After(cutoff) {
				summary.TotalRevenue += rec.rec.TotalAmount
			}
		case domain.InvoiceSent, domain.InvoiceOverdue:
			summary.PendingRevenue += rec.rec.TotalAmount
		}
	}
	for _, rec := range s.projects {
		if rec.owner == owner && rec.rec.Status == domain.ProjectActive {
			summary.ActiveProjects++
		}
	}
	for _, rec := range s.tasks {
		if rec.owner != owner {
			continue
		}
		if rec.rec.Status == domain.TaskCompleted {
			summary.CompletedTasks++
		} else {
			summary.PendingTasks++
		}
	}
	for _, rec := range s.worklogs {
		if rec.owner == owner && rec.rec.CreatedAt.After(cutoff) {
			summary.HoursTracked += rec.rec.HoursWorked
		}
	}
	summary.TotalRevenue = round2(summary.TotalRevenue)
	summary.PendingRevenue = round2(summary.PendingRevenue)
	summary.HoursTracked = round2(summary.HoursTracked)
	c.JSON(http.StatusOK, summary)
}

func (s *Server) revenueTrend(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		days = 30
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	owner := currentUserID(c)

	byDay := make(map[string]float64)
	for _, rec := range s.invoices {
		if rec.owner != owner || rec.rec.Status != domain.InvoicePaid || rec.rec.PaidDate == nil {
			continue
		}
		byDay[rec.rec.PaidDate.Format("2006-01-02")] += rec.rec.TotalAmount
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	points := make([]domain.RevenuePoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		points = append(points, domain.RevenuePoint{Date: day, Revenue: round2(byDay[day])})
	}
	c.JSON(http.StatusOK, domain.RevenueTrend{Days: days, Points: points})
}

func (s *Server) projectPerformance(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := currentUserID(c)

	perf := make(map[int64]*domain.ProjectPerformance)
	ids := make([]int64, 0)
	for id, rec := range s.projects {
		if rec.owner != owner {
			continue
		}
		perf[id] = &domain.ProjectPerformance{ProjectID: id, Title: rec.rec.Title}
		ids = append(ids, id)
	}
	for _, rec := range s.tasks {
		if rec.owner != owner || rec.rec.ProjectID == nil {
			continue
		}
		if p, ok := perf[*rec.rec.ProjectID]; ok {
			p.TasksTotal++
			if rec.rec.Status == domain.TaskCompleted {
				p.TasksCompleted++
			}
		}
	}
	for _, rec := range s.worklogs {
		if rec.owner != owner || rec.rec.ProjectID == nil {
			continue
		}
		if p, ok := perf[*rec.rec.ProjectID]; ok {
			p.HoursTracked = round2(p.HoursTracked + rec.rec.HoursWorked)
		}
	}
	for _, rec := range s.invoices {
		if rec.owner != owner || rec.rec.ProjectID == nil || rec.rec.Status != domain.InvoicePaid {
			continue
		}
		if p, ok := perf[*rec.rec.ProjectID]; ok {
			p.Revenue = round2(p.Revenue + rec.rec.TotalAmount)
		}
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]domain.ProjectPerformance, 0, len(ids))
	for _, id := range ids {
		out = append(out, *perf[id])
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		detail(c, http.StatusBadRequest, "No file provided")
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !uploadExtensions[ext] {
		detail(c, http.StatusBadRequest, fmt.Sprintf("File type %s is not allowed", ext))
		return
	}
	uploadType := c.DefaultPostForm("type", domain.UploadProject)

	// Nothing is written to disk; the mock only fabricates the stored path.
	stored := fmt.Sprintf("%d_%s", time.Now().Unix(), file.Filename)
	c.JSON(http.StatusOK, domain.UploadResult{
		URL:      fmt.Sprintf("/uploads/%s/%s/%s", uploadType, uuid.New().String(), stored),
		Filename: file.Filename,
	})
}
