package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

// UploadFile sends a file to the backend with its type discriminator
// (avatar, project, task) and returns the stored file's URL. Uploads use the
// long timeout class and the same credential/401 policy as every other call.
func (c *Client) UploadFile(ctx context.Context, filename string, content io.Reader, uploadType string) (*domain.UploadResult, error) {
	logger := NewLogger("POST /upload")

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("copy file content: %w", err)
	}
	if err := writer.WriteField("type", uploadType); err != nil {
		return nil, fmt.Errorf("write type field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+"/upload", &buf)
	if err != nil {
		logger.LogError(err)
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	start := time.Now()
	resp, err := c.uploadClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		logger.LogError(err)
		recordCall(duration, err)
		return nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		recordCall(duration, fmt.Errorf("status %d", resp.StatusCode))
		if resp.StatusCode == http.StatusUnauthorized {
			c.handleUnauthorized()
		}
		data, _ := io.ReadAll(resp.Body)
		apiErr := newAPIError(resp.StatusCode, data)
		logger.LogWarnf("backend returned status %d: %s", resp.StatusCode, apiErr.Message)
		return nil, apiErr
	}
	recordCall(duration, nil)

	var out domain.UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}
