package domain

import "time"

// User represents the authenticated account as reported by the backend.
// The client only ever caches a read-only copy; the backend owns the record.
type User struct {
	ID               int64      `json:"id"`
	Email            string     `json:"email"`
	Username         string     `json:"username"`
	FullName         *string    `json:"full_name,omitempty"`
	AvatarURL        *string    `json:"avatar_url,omitempty"`
	SubscriptionTier string     `json:"subscription_tier"`
	UsageCount       int        `json:"usage_count"`
	UsageLimit       int        `json:"usage_limit"`
	IsActive         bool       `json:"is_active"`
	IsVerified       bool       `json:"is_verified"`
	Bio              *string    `json:"bio,omitempty"`
	Website          *string    `json:"website,omitempty"`
	Location         *string    `json:"location,omitempty"`
	Timezone         string     `json:"timezone"`
	Role             string     `json:"role"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// Subscription tiers
const (
	TierFree       = "free"
	TierPro        = "pro"
	TierEnterprise = "enterprise"
)

// LoginRequest carries credentials for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries data for the registration endpoint.
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Username string  `json:"username"`
	FullName *string `json:"full_name,omitempty"`
}

// UpdateProfileRequest represents a partial profile edit.
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Bio       *string `json:"bio,omitempty"`
	Website   *string `json:"website,omitempty"`
	Location  *string `json:"location,omitempty"`
	Timezone  *string `json:"timezone,omitempty"`
}
