package handlers

import (
	"net/http"

	"github.com/ai-rd1/website/internal/components"
	"github.com/ai-rd1/website/internal/lead"
	"github.com/ai-rd1/website/internal/session"
	"github.com/ai-rd1/website/internal/version"
	"github.com/ai-rd1/website/pkg/logger"
)

// LandingPage renders the whole page, with the CTA card in the visitor's
// current state.
func (h *Handler) LandingPage(w http.ResponseWriter, r *http.Request) {
	st := h.sessions.Load(r)
	h.save(w, r, st)

	page := components.LandingPage(h.catalog, h.ctaProps(r, st), h.now().Year())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := page.Render(w); err != nil {
		h.log.Error("failed to render landing page", logger.Error(err))
	}
}

func (h *Handler) ctaProps(r *http.Request, st session.State) components.CTAProps {
	out := st.Outcome
	if h.leads.InFlight(st.VisitorKey) {
		out = lead.Loading()
	}
	return components.CTAProps{
		Copy:      h.catalog.CTA,
		DialCodes: h.catalog.DialCodes,
		Form:      st.Form,
		Outcome:   out,
		CSRFToken: csrfToken(r),
		MinDate:   h.now().In(st.Form.Location()).Format(lead.DateLayout),
	}
}

// Health reports liveness and the running version.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": version.Info(),
	})
}
