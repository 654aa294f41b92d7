package mockapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

func (s *Server) listWorkLogs(c *gin.Context) {
	var taskID, projectID *int64
	if raw := c.Query("task_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			taskID = &id
		}
	}
	if raw := c.Query("project_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			projectID = &id
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, collect(s.worklogs, currentUserID(c), func(w domain.WorkLog) bool {
		if taskID != nil && (w.TaskID == nil || *w.TaskID != *taskID) {
			return false
		}
		if projectID != nil && (w.ProjectID == nil || *w.ProjectID != *projectID) {
			return false
		}
		return true
	}))
}

func (s *Server) createWorkLog(c *gin.Context) {
	var req domain.CreateWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		validationErrors(c, "title: field required")
		return
	}
	if req.HoursWorked <= 0 {
		validationErrors(c, "hours_worked: must be greater than 0")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w := domain.WorkLog{
		ID:          s.allocID(),
		Title:       req.Title,
		Description: req.Description,
		TaskID:      req.TaskID,
		ProjectID:   req.ProjectID,
		HoursWorked: req.HoursWorked,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsBillable:  req.IsBillable,
		HourlyRate:  req.HourlyRate,
		Status:      domain.WorkLogLogged,
		Notes:       req.Notes,
		CreatedAt:   time.Now().UTC(),
	}
	if w.IsBillable && w.HourlyRate != nil {
		total := round2(w.HoursWorked * *w.HourlyRate)
		w.TotalAmount = &total
	}
	s.worklogs[w.ID] = &owned[domain.WorkLog]{owner: currentUserID(c), rec: w}
	c.JSON(http.StatusOK, w)
}

func (s *Server) getWorkLog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := fetch(s.worklogs, currentUserID(c), id)
	if !ok {
		detail(c, http.StatusNotFound, "Work log not found")
		return
	}
	c.JSON(http.StatusOK, rec.rec)
}

func (s *Server) updateWorkLog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.UpdateWorkLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrors(c, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := fetch(s.worklogs, currentUserID(c), id)
	if !ok {
		detail(c, http.StatusNotFound, "Work log not found")
		return
	}
	if req.Title != nil {
		rec.rec.Title = *req.Title
	}
	if req.Description != nil {
		rec.rec.Description = req.Description
	}
	if req.HoursWorked != nil {
		rec.rec.HoursWorked = *req.HoursWorked
	}
	if req.StartTime != nil {
		rec.rec.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		rec.rec.EndTime = req.EndTime
	}
	if req.IsBillable != nil {
		rec.rec.IsBillable = *req.IsBillable
	}
	if req.HourlyRate != nil {
		rec.rec.HourlyRate = req.HourlyRate
	}
	if req.Notes != nil {
		rec.rec.Notes = req.Notes
	}
	if rec.rec.IsBillable && rec.rec.HourlyRate != nil {
		total := round2(rec.rec.HoursWorked * *rec.rec.HourlyRate)
		rec.rec.TotalAmount = &total
	} else {
		rec.rec.TotalAmount = nil
	}
	touch(&rec.rec.UpdatedAt)
	c.JSON(http.StatusOK, rec.rec)
}

func (s *Server) deleteWorkLog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := fetch(s.worklogs, currentUserID(c), id); !ok {
		detail(c, http.StatusNotFound, "Work log not found")
		return
	}
	delete(s.worklogs, id)
	c.Status(http.StatusNoContent)
}

func (s *Server) updateWorkLogStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	newStatus := c.Query("new_status")
	switch newStatus {
	case domain.WorkLogLogged, domain.WorkLogApproved, domain.WorkLogRejected, domain.WorkLogPending:
	default:
		detail(c, http.StatusBadRequest, "Invalid work log status")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := fetch(s.worklogs, currentUserID(c), id)
	if !ok {
		detail(c, http.StatusNotFound, "Work log not found")
		return
	}
	rec.rec.Status = newStatus
	touch(&rec.rec.UpdatedAt)
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Work log status updated to %s", newStatus)})
}
