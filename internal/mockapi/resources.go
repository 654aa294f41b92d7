package mockapi

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

func (s *Server) registerResourceRoutes(rg *gin.RouterGroup) {
	authed := rg.Group("", s.authRequired())

	authed.GET("/projects", s.listProjects)
	authed.POST("/projects", s.createProject)
	authed.GET("/projects/:id", s.getProject)
	authed.PUT("/projects/:id", s.updateProject)
	authed.DELETE("/projects/:id", s.deleteProject)

	authed.GET("/tasks", s.listTasks)
	authed.POST("/tasks", s.createTask)
	authed.GET("/tasks/:id", s.getTask)
	authed.PUT("/tasks/:id", s.updateTask)
	authed.DELETE("/tasks/:id", s.deleteTask)

	authed.GET("/clients", s.listClients)
	authed.POST("/clients", s.createClient)
	authed.GET("/clients/:id", s.getClient)
	authed.PUT("/clients/:id", s.updateClient)
	authed.DELETE("/clients/:id", s.deleteClient)
	authed.PATCH("/clients/:id/toggle-status", s.toggleClientStatus)

	authed.GET("/invoices", s.listInvoices)
	authed.POST("/invoices", s.createInvoice)
	authed.GET("/invoices/:id", s.getInvoice)
	authed.PUT("/invoices/:id", s.updateInvoice)
	authed.DELETE("/invoices/:id", s.deleteInvoice)
	authed.PATCH("/invoices/:id/status", s.updateInvoiceStatus)
	authed.POST("/invoices/:id/send", s.sendInvoice)
	authed.GET("/invoices/:id/pdf", s.invoicePDF)

	authed.GET("/milestones", s.listMilestones)
	authed.POST("/milestones", s.createMilestone)
	authed.GET("/milestones/:id", s.getMilestone)
	authed.PUT("/milestones/:id", s.updateMilestone)
	authed.DELETE("/milestones/:id", s.deleteMilestone)
	authed.PATCH("/milestones/:id/status", s.updateMilestoneStatus)
	authed.PATCH("/milestones/:id/progress", s.updateMilestoneProgress)

	authed.GET("/work-logs", s.listWorkLogs)
	authed.POST("/work-logs", s.createWorkLog)
	authed.GET("/work-logs/:id", s.getWorkLog)
	authed.PUT("/work-logs/:id", s.updateWorkLog)
	authed.DELETE("/work-logs/:id", s.deleteWorkLog)
	authed.PATCH("/work-logs/:id/status", s.updateWorkLogStatus)

	authed.GET("/notifications", s.listNotifications)
	authed.GET("/notifications/stats/summary", s.notificationStats)
	authed.GET("/notifications/:id", s.getNotification)
	authed.PATCH("/notifications/:id/read", s.markNotificationRead)
	authed.PATCH("/notifications/read-all", s.markAllNotificationsRead)
	authed.DELETE("/notifications/:id", s.deleteNotification)

	authed.POST("/ai/generate", s.generateContent)
	authed.GET("/ai/usage", s.usageStats)

	authed.GET("/analytics", s.analyticsSummary)
	authed.GET("/analytics/revenue-trend", s.revenueTrend)
	authed.GET("/analytics/project-performance", s.projectPerformance)

	authed.POST("/upload", s.upload)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		detail(c, http.StatusUnprocessableEntity, "Invalid id")
		return 0, false
	}
	return id, true
}

// collect returns the caller's records in id order, optionally filtered.
func collect[T any](m map[int64]*owned[T], owner int64, keep func(T) bool) []T {
	ids := make([]int64, 0, len(m))
	for id, rec := range m {
		if rec.owner == owner {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if keep == nil || keep(m[id].rec) {
			out = append(out, m[id].rec)
		}
	}
	return out
}

func fetch[T any](m map[int64]*owned[T], owner, id int64) (*owned[T], bool) {
	rec, ok := m[id]
	if !ok || rec.owner != owner {
		return nil, false
	}
	return rec, true
}

// --- projects ---

func (s *Server) listProjects(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, collect(s.projects, currentUserID(c), nil))
}

func (s *Server) createProject(c *gin.Context) {
	var req domain.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		validationErrors(c, "title: field required")
		return
	}
	status := req.Status
	if status == "" {
		status = domain.ProjectActive
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := domain.Project{
		ID:          s.allocID(),
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		ClientName:  req.ClientName,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		CreatedAt:   time.Now().UTC(),
	}
	s.projects[p.ID] = &owned[domain.Project]{owner: currentUserID(c), rec: p}
	c.JSON(http.StatusOK, p)
}

func (s *Server) getProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := fetch(s.projects, currentUserID(c), id)
	if !ok {
		detail(c, http.StatusNotFound, "Project not found")
		return
	}
	c.JSON(http.StatusOK, rec.rec)
}

func (s *Server) updateProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrors(c, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := fetch(s.projects, currentUserID(c), id)
	if !ok {
		detail(c, http.StatusNotFound, "Project not found")
		return
	}
	if req.Title != nil {
		rec.rec.Title = *req.Title
	}
	if req.Description != nil {
		rec.rec.Description = req.Description
	}
	if req.Status != nil {
		rec.rec.Status = *req.Status
	}
	if req.ClientName != nil {
		rec.rec.ClientName = req.ClientName
	}
	if req.Budget != nil {
		rec.rec.Budget = req.Budget
	}
	if req.Deadline != nil {
		rec.rec.Deadline = req.Deadline
	}
	touch(&rec.rec.UpdatedAt)
	c.JSON(http.StatusOK, rec.rec)
}

func (s *Server) deleteProject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := fetch(s.projects, currentUserID(c), id); !ok {
		detail(c, http.StatusNotFound, "Project not found")
		return
	}
	delete(s.projects, id)
	c.Status(http.StatusNoContent)
}

// --- tasks ---

func (s *Server) listTasks(c *gin.Context) {
	var projectID *int64
	if raw := c.Query("project_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			projectID = &id
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, collect(s.tasks, currentUserID(c), func(t domain.Task) bool {
		return projectID == nil || (t.ProjectID != nil && *t.ProjectID == *projectID)
	}))
}

func (s *Server) createTask(c *gin.Context) {
	var req domain.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		validationErrors(c, "title: field required")
		return
	}
	status := req.Status
	if status == "" {
		status = domain.TaskPending
	}
	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t := domain.Task{
		ID:          s.allocID(),
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		ProjectID:   req.ProjectID,
		MilestoneID: req.MilestoneID,
		DueDate:     req.DueDate,
		CreatedAt:   time.Now().UTC(),
	}
	s.tasks[t.ID] = &owned[domain.Task]{owner: currentUserID(c), rec: t}
	c.JSON(http.StatusOK, t)
}

func (s *Server) getTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := fetch(s.tasks, currentUserID(c), id)
	if !ok {
		detail(c, http.StatusNotFound, "Task not found")
		return
	}
	c.JSON(http.StatusOK, rec.rec)
}

func (s *Server) updateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrors(c, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	owner := currentUserID(c)
	rec, ok := fetch(s.tasks, owner, id)
	if !ok {
		detail(c, http.StatusNotFound, "Task not found")
		return
	}
	wasCompleted := rec.rec.Status == domain.TaskCompleted
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
	if req.ProjectID != nil {
		rec.rec.ProjectID = req.ProjectID
	}
	if req.MilestoneID != nil {
		rec.rec.MilestoneID = req.MilestoneID
	}
	if req.DueDate != nil {
		rec.rec.DueDate = req.DueDate
	}
	if req.TimeTracked != nil {
		rec.rec.TimeTracked = *req.TimeTracked
	}
	touch(&rec.rec.UpdatedAt)

	if !wasCompleted && rec.rec.Status == domain.TaskCompleted {
		s.pushNotification(owner, "Task completed",
			fmt.Sprintf("Task %q was marked completed.", rec.rec.Title),
			domain.NotifyTaskCompleted, domain.PriorityLow)
	}
	c.JSON(http.StatusOK, rec.rec)
}

func (s *Server) deleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := fetch(s.tasks, currentUserID(c), id); !ok {
		detail(c, http.StatusNotFound, "Task not found")
		return
	}
	delete(s.tasks, id)
	c.Status(http.StatusNoContent)
}

// --- clients ---

func (s *Server) listClients(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, collect(s.clients, currentUserID(c), nil))
}

func (s *Server) createClient(c *gin.Context) {
	var req domain.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		validationErrors(c, "name: field required", "email: field required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cl := domain.Client{
		ID:        s.allocID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Address:   req.Address,
		Notes:     req.Notes,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	s.clients[cl.ID] = &owned[domain.Client]{owner: currentUserID(c), rec: cl}
	c.JSON(http.StatusOK, cl)
}

func (s *Server) getClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := fetch(s.clients, currentUserID(c), id)
	if !ok {
		detail(c, http.StatusNotFound, "Client not found")
		return
	}
	c.JSON(http.StatusOK, rec.rec)
}

func (s *Server) updateClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req domain.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrors(c, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := fetch(s.clients, currentUserID(c), id)
	if !ok {
		detail(c, http.StatusNotFound, "Client not found")
		return
	}
	if req.Name != nil {
		rec.rec.Name = *req.Name
	}
	if req.Email != nil {
		rec.rec.Email = *req.Email
	}
	if req.Phone != nil {
		rec.rec.Phone = req.Phone
	}
	if req.Company != nil {
		rec.rec.Company = req.Company
	}
	if req.Address != nil {
		rec.rec.Address = req.Address
	}
	if req.Notes != nil {
		rec.rec.Notes = req.Notes
	}
	touch(&rec.rec.UpdatedAt)
	c.JSON(http.StatusOK, rec.rec)
}

func (s *Server) deleteClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := fetch(s.clients, currentUserID(c), id); !ok {
		detail(c, http.StatusNotFound, "Client not found")
		return
	}
	delete(s.clients, id)
	c.Status(http.StatusNoContent)
}

func (s *Server) toggleClientStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := fetch(s.clients, currentUserID(c), id)
	if !ok {
		detail(c, http.StatusNotFound, "Client not found")
		return
	}
	rec.rec.IsActive = !rec.rec.IsActive
	touch(&rec.rec.UpdatedAt)
	state := "deactivated"
	if rec.rec.IsActive {
		state = "activated"
	}
	c.JSON(http.StatusOK, domain.ToggleStatusResponse{
		Message:  fmt.Sprintf("Client %s successfully", state),
		IsActive: rec.rec.IsActive,
	})
}

func touch(ts **time.Time) {
	now := time.Now().UTC()
	*ts = &now
}
