package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

func (s *Server) listNotifications(c *gin.Context) {
	unreadOnly := c.Query("unread_only") == "true"
	priority := c.Query("priority")
	ntype := c.Query("type")

	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, collect(s.notifications, currentUserID(c), func(n domain.Notification) bool {
		if unreadOnly && n.IsRead {
			return false
		}
		if priority != "" && n.Priority != priority {
			return false
		}
		if ntype != "" && n.Type != ntype {
			return false
		}
		return true
	}))
}

func (s *Server) getNotification(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := fetch(s.notifications, currentUserID(c), id)
	if !ok {
		detail(c, http.StatusNotFound, "Notification not found")
		return
	}
	c.JSON(http.StatusOK, rec.rec)
}

func (s *Server) markNotificationRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := fetch(s.notifications, currentUserID(c), id)
	if !ok {
		detail(c, http.StatusNotFound, "Notification not found")
		return
	}
	if !rec.rec.IsRead {
		now := time.Now().UTC()
		rec.rec.IsRead = true
		rec.rec.ReadAt = &now
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

func (s *Server) markAllNotificationsRead(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := currentUserID(c)
	now := time.Now().UTC()
	count := 0
	for _, rec := range s.notifications {
		if rec.owner != owner || rec.rec.IsRead {
			continue
		}
		rec.rec.IsRead = true
		rec.rec.ReadAt = &now
		count++
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read", "updated_count": count})
}

func (s *Server) deleteNotification(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := fetch(s.notifications, currentUserID(c), id); !ok {
		detail(c, http.StatusNotFound, "Notification not found")
		return
	}
	delete(s.notifications, id)
	c.Status(http.StatusNoContent)
}

func (s *Server) notificationStats(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := currentUserID(c)
	stats := domain.NotificationStats{}
	for _, rec := range s.notifications {
		if rec.owner != owner {
			continue
		}
		stats.TotalNotifications++
		if !rec.rec.IsRead {
			stats.UnreadNotifications++
			if rec.rec.Priority == domain.PriorityHigh || rec.rec.Priority == domain.PriorityUrgent {
				stats.HighPriorityUnread++
			}
		}
	}
	c.JSON(http.StatusOK, stats)
}
