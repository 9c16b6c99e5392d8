package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON writes err to w in the standard error envelope. 5xx errors are logged.
func WriteJSON(w http.ResponseWriter, log *slog.Logger, err error) {
	WriteJSONWith(w, log, err, nil)
}

// WriteJSONWith writes the error envelope plus extra top-level fields.
// Extra fields never replace "error".
func WriteJSONWith(w http.ResponseWriter, log *slog.Logger, err error, extra map[string]any) {
	status, body := ToHTTPError(err)
	if status >= http.StatusInternalServerError && log != nil {
		log.Error("request error",
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
	}
	for k, v := range extra {
		if _, taken := body[k]; !taken {
			body[k] = v
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
