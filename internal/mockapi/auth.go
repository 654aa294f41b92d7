package mockapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

func (s *Server) registerAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/login", s.login)
	auth.POST("/register", s.register)
	auth.POST("/refresh", s.refresh)
	auth.POST("/logout", s.authRequired(), s.logout)
	auth.GET("/me", s.authRequired(), s.me)

	rg.PUT("/users/me", s.authRequired(), s.updateProfile)
}

func (s *Server) login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrors(c, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.byEmail[strings.ToLower(req.Email)]
	if !ok || s.accounts[userID].password != req.Password {
		detail(c, http.StatusUnauthorized, "Incorrect email or password")
		return
	}
	acct := s.accounts[userID]
	if !acct.user.IsActive {
		detail(c, http.StatusBadRequest, "Inactive user")
		return
	}

	c.JSON(http.StatusOK, s.issueSession(acct))
}

func (s *Server) register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrors(c, "Invalid request body")
		return
	}

	var missing []string
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email: field required")
	}
	if strings.TrimSpace(req.Password) == "" {
		missing = append(missing, "password: field required")
	}
	if strings.TrimSpace(req.Username) == "" {
		missing = append(missing, "username: field required")
	}
	if len(missing) > 0 {
		validationErrors(c, missing...)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(req.Email)
	if _, exists := s.byEmail[email]; exists {
		detail(c, http.StatusBadRequest, "Email already registered")
		return
	}
	if _, exists := s.byUsername[req.Username]; exists {
		detail(c, http.StatusBadRequest, "Username already taken")
		return
	}

	now := time.Now().UTC()
	acct := &account{
		user: domain.User{
			ID:               s.allocID(),
			Email:            email,
			Username:         req.Username,
			FullName:         req.FullName,
			SubscriptionTier: domain.TierFree,
			UsageLimit:       defaultUsageLimit,
			IsActive:         true,
			Timezone:         "UTC",
			Role:             "user",
			CreatedAt:        now,
		},
		password: req.Password,
	}
	s.accounts[acct.user.ID] = acct
	s.byEmail[email] = acct.user.ID
	s.byUsername[req.Username] = acct.user.ID

	c.JSON(http.StatusOK, s.issueSession(acct))
}

func (s *Server) refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		detail(c, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userID, ok := s.refreshTokens[req.RefreshToken]
	if !ok {
		detail(c, http.StatusUnauthorized, "Invalid refresh token")
		return
	}
	delete(s.refreshTokens, req.RefreshToken)

	c.JSON(http.StatusOK, s.issueSession(s.accounts[userID]))
}

func (s *Server) logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")

	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (s *Server) me(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.accounts[currentUserID(c)].user)
}

func (s *Server) updateProfile(c *gin.Context) {
	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrors(c, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct := s.accounts[currentUserID(c)]
	if req.FullName != nil {
		acct.user.FullName = req.FullName
	}
	if req.AvatarURL != nil {
		acct.user.AvatarURL = req.AvatarURL
	}
	if req.Bio != nil {
		acct.user.Bio = req.Bio
	}
	if req.Website != nil {
		acct.user.Website = req.Website
	}
	if req.Location != nil {
		acct.user.Location = req.Location
	}
	if req.Timezone != nil {
		acct.user.Timezone = *req.Timezone
	}
	now := time.Now().UTC()
	acct.user.UpdatedAt = &now

	c.JSON(http.StatusOK, acct.user)
}

// issueSession mints a fresh token pair for the account. Caller holds the
// lock.
func (s *Server) issueSession(acct *account) domain.AuthSession {
	access := uuid.New().String()
	refresh := uuid.New().String()
	s.tokens[access] = acct.user.ID
	s.refreshTokens[refresh] = acct.user.ID
	return domain.AuthSession{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		User:         acct.user,
	}
}

// RevokeAllTokens invalidates every live credential, letting tests force the
// backend to answer 401 on the next call.
func (s *Server) RevokeAllTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = make(map[string]int64)
	s.refreshTokens = make(map[string]int64)
}
