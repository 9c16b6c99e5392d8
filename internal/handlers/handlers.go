// Package handlers serves the landing page and the lead-capture endpoints.
package handlers

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/csrf"
	"go.uber.org/fx"

	"github.com/ai-rd1/website/internal/content"
	"github.com/ai-rd1/website/internal/lead"
	"github.com/ai-rd1/website/internal/session"
	"github.com/ai-rd1/website/pkg/logger"
)

var Module = fx.Module("handlers",
	fx.Provide(NewHandler),
)

// Handler holds what the page and lead endpoints share.
type Handler struct {
	leads    *lead.Controller
	sessions *session.Store
	catalog  *content.Catalog
	log      *slog.Logger
	now      func() time.Time
}

func NewHandler(leads *lead.Controller, sessions *session.Store, catalog *content.Catalog, log *slog.Logger) *Handler {
	return &Handler{
		leads:    leads,
		sessions: sessions,
		catalog:  catalog,
		log:      log.With(logger.Scope("handlers")),
		now:      time.Now,
	}
}

func (h *Handler) visitor(r *http.Request, st session.State) lead.Visitor {
	return lead.Visitor{
		Key:       st.VisitorKey,
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
	}
}

// clientIP strips the port from RemoteAddr. chi's RealIP middleware has
// already replaced it with X-Forwarded-For / X-Real-IP when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request, st session.State) {
	if err := h.sessions.Save(w, r, st); err != nil {
		h.log.Error("failed to save session", logger.Error(err))
	}
}

func csrfToken(r *http.Request) string {
	return csrf.Token(r)
}
