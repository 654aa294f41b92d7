package mockapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

func (s *Server) listMilestones(c *gin.Context) {
	var projectID *int64
	if raw := c.Query("project_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			projectID = &id
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, collect(s.milestones, currentUserID(c), func(m domain.Milestone) bool {
		return projectID == nil || m.ProjectID == *projectID
	}))
}

func (s *Server) createMilestone(c *gin.Context) {
	var req domain.CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		validationErrors(c, "title: field required")
		return
	}
	status := req.Status
	if status == "" {
		status = domain.MilestoneNotStarted
	}
	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := fetch(s.projects, currentUserID(c), req.ProjectID); !ok {
		detail(c, http.StatusNotFound, "Project not found")
		return
	}
	m := domain.Milestone{
		ID:             s.allocID(),
		Title:          req.Title,
		Description:    req.Description,
		ProjectID:      req.ProjectID,
		Status:         status,
		Priority:       priority,
		Progress:       clampProgress(req.Progress),
		DueDate:        req.DueDate,
		StartDate:      req.StartDate,
		EstimatedHours: req.EstimatedHours,
		Notes:          req.Notes,
		IsBillable:     req.IsBillable,
		HourlyRate:     req.HourlyRate,
		CreatedAt:      time.Now().UTC(),
	}
	s.milestones[m.ID] = &owned[domain.Milestone]{owner: currentUserID(c), rec: m}
	c.JSON(http.StatusOK, m)
}

func (s *Server) getMilestone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := fetch(s.milestones, currentUserID(c), id)
	if !ok {
		detail(c, http.StatusNotFound, "Milestone not found")
		return
	}
	c.JSON(http.StatusOK, rec.rec)
}

func (s *Server) updateMilestone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrors(c, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	owner := currentUserID(c)
	rec, ok := fetch(s.milestones, owner, id)
	if !ok {
		detail(c, http.StatusNotFound, "Milestone not found")
		return
	}
	wasCompleted := rec.rec.Status == domain.MilestoneCompleted
	if req.Title != nil {
		rec.rec.Title = *req.Title
	}
	if req.Description != nil {
		rec.rec.Description = req.Description
	}
	if req.Status != nil {
		rec.rec.Status = *req.Status
	}
	if req.Priority != nil {
		rec.rec.Priority = *req.Priority
	}
	if req.Progress != nil {
		rec.rec.Progress = clampProgress(*req.Progress)
	}
	if req.DueDate != nil {
		rec.rec.DueDate = req.DueDate
	}
	if req.StartDate != nil {
		rec.rec.StartDate = req.StartDate
	}
	if req.EstimatedHours != nil {
		rec.rec.EstimatedHours = req.EstimatedHours
	}
	if req.ActualHours != nil {
		rec.rec.ActualHours = req.ActualHours
	}
	if req.Notes != nil {
		rec.rec.Notes = req.Notes
	}
	if req.IsBillable != nil {
		rec.rec.IsBillable = *req.IsBillable
	}
	if req.HourlyRate != nil {
		rec.rec.HourlyRate = req.HourlyRate
	}
	s.settleMilestone(owner, rec, wasCompleted)
	c.JSON(http.StatusOK, rec.rec)
}

func (s *Server) deleteMilestone(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := fetch(s.milestones, currentUserID(c), id); !ok {
		detail(c, http.StatusNotFound, "Milestone not found")
		return
	}
	delete(s.milestones, id)
	c.Status(http.StatusNoContent)
}

func (s *Server) updateMilestoneStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	newStatus := c.Query("new_status")
	switch newStatus {
	case domain.MilestoneNotStarted, domain.MilestoneInProgress, domain.MilestoneCompleted, domain.MilestonePaused:
	default:
		detail(c, http.StatusBadRequest, "Invalid milestone status")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	owner := currentUserID(c)
	rec, ok := fetch(s.milestones, owner, id)
	if !ok {
		detail(c, http.StatusNotFound, "Milestone not found")
		return
	}
	wasCompleted := rec.rec.Status == domain.MilestoneCompleted
	rec.rec.Status = newStatus
	if newStatus == domain.MilestoneCompleted {
		rec.rec.Progress = 100
	}
	s.settleMilestone(owner, rec, wasCompleted)
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Milestone status updated to %s", newStatus)})
}

func (s *Server) updateMilestoneProgress(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	progress, err := strconv.Atoi(c.Query("progress"))
	if err != nil || progress < 0 || progress > 100 {
		detail(c, http.StatusBadRequest, "Progress must be between 0 and 100")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	owner := currentUserID(c)
	rec, ok := fetch(s.milestones, owner, id)
	if !ok {
		detail(c, http.StatusNotFound, "Milestone not found")
		return
	}
	wasCompleted := rec.rec.Status == domain.MilestoneCompleted
	rec.rec.Progress = progress
	if progress == 100 {
		rec.rec.Status = domain.MilestoneCompleted
	} else if progress > 0 && rec.rec.Status == domain.MilestoneNotStarted {
		rec.rec.Status = domain.MilestoneInProgress
	}
	s.settleMilestone(owner, rec, wasCompleted)
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Milestone progress updated to %d%%", progress)})
}

// settleMilestone stamps completion bookkeeping after a mutation. Caller
// holds the lock.
func (s *Server) settleMilestone(owner int64, rec *owned[domain.Milestone], wasCompleted bool) {
	now := time.Now().UTC()
	if rec.rec.Status == domain.MilestoneCompleted {
		if rec.rec.CompletedDate == nil {
			rec.rec.CompletedDate = &now
		}
		if !wasCompleted {
			s.pushNotification(owner, "Milestone completed",
				fmt.Sprintf("Milestone %q reached 100%%.", rec.rec.Title),
				domain.NotifyMilestoneCompleted, domain.PriorityMedium)
		}
	} else {
		rec.rec.CompletedDate = nil
	}
	rec.rec.UpdatedAt = &now
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
