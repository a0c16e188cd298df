package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/blanchemarion/biological-relativity/internal/config"
)

// ErrReportUnavailable covers every way the narrative service can fail:
// missing endpoint, missing credential, transport or HTTP errors. Callers
// fall back to the plain summary text.
var ErrReportUnavailable = errors.New("narrative service unavailable")

// Client talks to the external narrative service.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewClient resolves the endpoint and credential from config. A client
// with no endpoint is still valid; Narrate will report unavailability.
func NewClient(cfg config.ReportConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   os.Getenv(cfg.APIKeyEnv),
		client:   &http.Client{Timeout: timeout},
	}
}

type narrateRequest struct {
	Summary string `json:"summary"`
}

type narrateResponse struct {
	Report string `json:"report"`
}

// Narrate posts a summary and returns the service's prose rendering.
func (c *Client) Narrate(ctx context.Context, summary string) (string, error) {
	if c.endpoint == "" {
		return "", fmt.Errorf("no endpoint configured: %w", ErrReportUnavailable)
	}
	if c.apiKey == "" {
		return "", fmt.Errorf("no credential in environment: %w", ErrReportUnavailable)
	}

	body, err := json.Marshal(narrateRequest{Summary: summary})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %v: %w", err, ErrReportUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d: %w", resp.StatusCode, ErrReportUnavailable)
	}

	var nr narrateResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return "", fmt.Errorf("decode response: %v: %w", err, ErrReportUnavailable)
	}
	return nr.Report, nil
}
