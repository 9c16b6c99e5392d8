package lead

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/ai-rd1/website/pkg/logger"
)

// CallPath is the call service endpoint that accepts leads.
const CallPath = "/interview/client/call/"

// Client posts leads to the voice backend.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// CallResponse is what the backend returns on success. Every field is optional.
type CallResponse struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
}

// APIError is a non-success response from the call service.
type APIError struct {
	StatusCode int
	// Detail is the server-supplied message, if any
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("call service returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("call service returned %d", e.StatusCode)
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetTransport(otelhttp.NewTransport(http.DefaultTransport)).
		SetHeader("Accept", "application/json")

	return &Client{
		http: rc,
		log:  log.With(logger.Scope("lead.client")),
	}
}

// Submit sends one lead. Only 200 and 201 count as success; the request is
// never retried.
func (c *Client) Submit(ctx context.Context, submissionID string, req LeadRequest) (*CallResponse, error) {
	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", submissionID).
		SetBody(req).
		Post(CallPath)
	apiDuration.WithLabelValues(string(req.CallType)).Observe(time.Since(start).Seconds())
	if err != nil {
		c.log.Warn("call service unreachable",
			slog.String("submission_id", submissionID),
			logger.Error(err),
		)
		return nil, fmt.Errorf("post lead: %w", err)
	}

	status := resp.StatusCode()
	if status != http.StatusOK && status != http.StatusCreated {
		apiErr := &APIError{StatusCode: status, Detail: errorDetail(resp.Body())}
		c.log.Info("call service rejected lead",
			slog.String("submission_id", submissionID),
			slog.Int("status", status),
			slog.String("detail", apiErr.Detail),
		)
		return nil, apiErr
	}

	out := &CallResponse{}
	if body := resp.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			c.log.Debug("call service returned a non-JSON body", slog.Int("status", status))
		}
	}
	return out, nil
}

// errorDetail extracts a human message from the error bodies the backend
// produces: {"detail": "..."}, {"detail": ["..."]}, {"message": "..."},
// {"error": "..."} or {"non_field_errors": ["..."]}.
func errorDetail(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, key := range []string{"detail", "message", "error", "non_field_errors"} {
		if msg := firstString(payload[key]); msg != "" {
			return msg
		}
	}
	return ""
}

func firstString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []any:
		for _, item := range t {
			if s := firstString(item); s != "" {
				return s
			}
		}
	case map[string]any:
		if s, ok := t["message"].(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
