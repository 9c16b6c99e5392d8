package lead

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-rd1/website/pkg/logger"
)

func sampleRequest() LeadRequest {
	return LeadRequest{
		Name:        "Steven",
		Phone:       "+15550001234",
		CompanyName: "Acme Inc.",
		CompanySize: Size11To50,
		CallType:    CallNow,
	}
}

func TestClientSubmit_PostsPayload(t *testing.T) {
	var gotPath, gotMethod, gotRequestID string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotRequestID = r.Header.Get("X-Request-ID")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"call_123","status":"queued"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", 5*time.Second, logger.Discard())
	resp, err := client.Submit(context.Background(), "sub-1", sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, CallPath, gotPath)
	assert.Equal(t, "sub-1", gotRequestID)
	assert.Equal(t, map[string]any{
		"name":         "Steven",
		"phone":        "+15550001234",
		"company_name": "Acme Inc.",
		"company_size": "11-50",
		"call_type":    "NOW",
	}, gotBody)
	assert.Equal(t, "call_123", resp.ID)
	assert.Equal(t, "queued", resp.Status)
}

func TestClientSubmit_Statuses(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    bool
		wantDetail string
	}{
		{"200 with empty body", http.StatusOK, "", false, ""},
		{"201 with non-JSON body", http.StatusCreated, "created", false, ""},
		{"202 is not success", http.StatusAccepted, `{}`, true, ""},
		{"400 with detail", http.StatusBadRequest, `{"detail":"Phone number is not reachable."}`, true, "Phone number is not reachable."},
		{"400 with detail list", http.StatusBadRequest, `{"detail":["Invalid company size."]}`, true, "Invalid company size."},
		{"422 with message", http.StatusUnprocessableEntity, `{"message":"Outside calling hours."}`, true, "Outside calling hours."},
		{"400 with non_field_errors", http.StatusBadRequest, `{"non_field_errors":["Duplicate lead."]}`, true, "Duplicate lead."},
		{"500 with html", http.StatusInternalServerError, `<html>oops</html>`, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, 5*time.Second, logger.Discard()).
				Submit(context.Background(), "sub", sampleRequest())
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
		})
	}
}

func TestClientSubmit_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second, logger.Discard()).
		Submit(context.Background(), "sub", sampleRequest())
	require.Error(t, err)

	var apiErr *APIError
	assert.NotErrorAs(t, err, &apiErr)
}

func TestAPIError_Error(t *testing.T) {
	assert.Equal(t, "call service returned 400: bad phone", (&APIError{StatusCode: 400, Detail: "bad phone"}).Error())
	assert.Equal(t, "call service returned 503", (&APIError{StatusCode: 503}).Error())
}
