// Package mockapi is an in-memory stand-in for the QuickBird backend REST
// surface, used by the dev server and by integration tests. It mirrors the
// backend's observable contract: bearer auth, FastAPI-style "detail" error
// payloads, backend-assigned ids and timestamps, and the patch endpoints
// that take query parameters.
package mockapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

const defaultUsageLimit = 10

type account struct {
	user     domain.User
	password string
}

type owned[T any] struct {
	owner int64
	rec   T
}

// Server holds all mock state behind one mutex. Everything lives in process
// memory; restarting the server is a full reset.
type Server struct {
	mu sync.Mutex

	nextID        int64
	accounts      map[int64]*account
	byEmail       map[string]int64
	byUsername    map[string]int64
	tokens        map[string]int64 // access token -> user id
	refreshTokens map[string]int64

	projects      map[int64]*owned[domain.Project]
	tasks         map[int64]*owned[domain.Task]
	clients       map[int64]*owned[domain.Client]
	invoices      map[int64]*owned[domain.Invoice]
	milestones    map[int64]*owned[domain.Milestone]
	worklogs      map[int64]*owned[domain.WorkLog]
	notifications map[int64]*owned[domain.Notification]

	engine *gin.Engine
}

// New constructs the mock server and its routes.
func New() *Server {
	s := &Server{
		accounts:      make(map[int64]*account),
		byEmail:       make(map[string]int64),
		byUsername:    make(map[string]int64),
		tokens:        make(map[string]int64),
		refreshTokens: make(map[string]int64),
		projects:      make(map[int64]*owned[domain.Project]),
		tasks:         make(map[int64]*owned[domain.Task]),
		clients:       make(map[int64]*owned[domain.Client]),
		invoices:      make(map[int64]*owned[domain.Invoice]),
		milestones:    make(map[int64]*owned[domain.Milestone]),
		worklogs:      make(map[int64]*owned[domain.WorkLog]),
		notifications: make(map[int64]*owned[domain.Notification]),
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api/v1")
	s.registerAuthRoutes(api)
	s.registerResourceRoutes(api)

	s.engine = r
	return s
}

// Handler exposes the router for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until the process exits.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// detail writes a FastAPI-style error payload.
func detail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"detail": msg})
}

// validationErrors writes a 422 with a detail list, the shape FastAPI emits
// for field validation failures.
func validationErrors(c *gin.Context, msgs ...string) {
	list := make([]gin.H, 0, len(msgs))
	for _, m := range msgs {
		list = append(list, gin.H{"msg": m, "type": "value_error"})
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": list})
}

// allocID hands out backend-assigned identities. Caller holds the lock.
func (s *Server) allocID() int64 {
	s.nextID++
	return s.nextID
}

// authRequired resolves the bearer token to a user id.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}
		s.mu.Lock()
		userID, ok := s.tokens[header[len(prefix):]]
		s.mu.Unlock()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}

// pushNotification records a notification for the user. Caller holds the lock.
func (s *Server) pushNotification(owner int64, title, message, ntype, priority string) {
	id := s.allocID()
	s.notifications[id] = &owned[domain.Notification]{
		owner: owner,
		rec: domain.Notification{
			ID:        id,
			Title:     title,
			Message:   message,
			Type:      ntype,
			Priority:  priority,
			CreatedAt: time.Now().UTC(),
		},
	}
}
