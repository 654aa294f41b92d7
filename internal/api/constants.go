package api

import "time"

const (
	// DefaultTimeout is the standard timeout for CRUD and auth operations
	DefaultTimeout = 30 * time.Second

	// UploadTimeout is for multipart file uploads
	UploadTimeout = 90 * time.Second

	// GenerateTimeout is for AI content generation which can take minutes
	GenerateTimeout = 3 * time.Minute
)

// apiPrefix is the versioned base path of the backend REST surface.
const apiPrefix = "/api/v1"
