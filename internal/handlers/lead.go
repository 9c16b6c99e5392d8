package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/ai-rd1/website/internal/components"
	"github.com/ai-rd1/website/internal/lead"
	"github.com/ai-rd1/website/internal/session"
	"github.com/ai-rd1/website/pkg/apperror"
	"github.com/ai-rd1/website/pkg/logger"
)

const ctaAnchor = "/#cta"

// SubmitLead handles the plain form post: it runs the submission, stores the
// form and outcome in the session and redirects back to the CTA.
func (h *Handler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	st := h.sessions.Load(r)
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, ctaAnchor, http.StatusSeeOther)
		return
	}

	form := h.formFromValues(r)
	out, err := h.leads.Submit(r.Context(), h.visitor(r, st), form)
	h.logOutcome(st, out, err)

	st.Form = form.Normalize()
	if out.State != lead.StateLoading && out.State != lead.StateIdle {
		st.Outcome = out
	}
	h.save(w, r, st)
	http.Redirect(w, r, ctaAnchor, http.StatusSeeOther)
}

// ToggleMode switches Call Now / Schedule or flips AM/PM without JavaScript.
// Entered values are kept. Nothing changes while a submission is in flight.
func (h *Handler) ToggleMode(w http.ResponseWriter, r *http.Request) {
	st := h.sessions.Load(r)
	if h.leads.InFlight(st.VisitorKey) || r.ParseForm() != nil {
		http.Redirect(w, r, ctaAnchor, http.StatusSeeOther)
		return
	}

	form := h.formFromValues(r)
	switch lead.Mode(r.PostFormValue("switch_to")) {
	case lead.ModeCall:
		form.Mode = lead.ModeCall
	case lead.ModeSchedule:
		form.Mode = lead.ModeSchedule
	}
	if p := r.PostFormValue("set_period"); p != "" {
		form.Time.Period = lead.ParsePeriod(p)
	}

	st.Form = form.Normalize()
	h.save(w, r, st)
	http.Redirect(w, r, ctaAnchor, http.StatusSeeOther)
}

// Back returns the CTA to the form, keeping what the visitor typed.
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	st := h.sessions.Load(r)
	st.Outcome = h.leads.Back()
	h.save(w, r, st)
	http.Redirect(w, r, ctaAnchor, http.StatusSeeOther)
}

// apiResponse is the body of POST /api/leads. HTML is the rendered CTA panel
// the enhancement script swaps in.
type apiResponse struct {
	Outcome lead.Outcome `json:"outcome"`
	HTML    string       `json:"html"`
}

// APISubmitLead is the JSON variant of SubmitLead used by the enhanced form.
// It accepts a JSON Form or a urlencoded form body.
func (h *Handler) APISubmitLead(w http.ResponseWriter, r *http.Request) {
	st := h.sessions.Load(r)

	form, err := h.decodeForm(w, r)
	if err != nil {
		apperror.WriteJSON(w, h.log, apperror.ErrBadRequest.WithInternal(err))
		return
	}

	out, err := h.leads.Submit(r.Context(), h.visitor(r, st), form)
	h.logOutcome(st, out, err)

	st.Form = form.Normalize()
	if out.State == lead.StateSuccess || out.State == lead.StateFailed {
		st.Outcome = out
	}
	h.save(w, r, st)

	props := h.ctaProps(r, st)
	props.Outcome = out
	if out.State == lead.StateIdle {
		props.Outcome = st.Outcome
	}
	html, renderErr := renderString(components.CTAPanel(props))
	if renderErr != nil {
		h.log.Error("failed to render CTA panel", logger.Error(renderErr))
	}

	if err != nil {
		apperror.WriteJSONWith(w, h.log, toAppError(err), map[string]any{
			"outcome": out,
			"html":    html,
		})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Outcome: out, HTML: html})
}

// toAppError maps controller errors onto HTTP errors.
func toAppError(err error) error {
	var verr *lead.ValidationError
	var apiErr *lead.APIError
	switch {
	case errors.Is(err, lead.ErrNotReady):
		return apperror.ErrValidation.WithMessage("Please fill in every required field").WithInternal(err)
	case errors.Is(err, lead.ErrPastDate):
		return apperror.NewValidation(map[string]string{"date": "past"}).
			WithMessage("Please pick today or a later date").WithInternal(err)
	case errors.As(err, &verr):
		return apperror.NewValidation(verr.Fields).WithInternal(err)
	case errors.Is(err, lead.ErrInFlight):
		return apperror.ErrConflict.WithInternal(err)
	case errors.Is(err, lead.ErrRateLimited):
		return apperror.ErrTooManyRequests.WithMessage(lead.RateLimitedMessage).WithInternal(err)
	case errors.As(err, &apiErr):
		return apperror.ErrBadGateway.WithMessage(apiErr.Detail).
			WithDetails(map[string]any{"status": apiErr.StatusCode}).WithInternal(err)
	default:
		return apperror.ErrBadGateway.WithMessage(lead.FallbackMessage).WithInternal(err)
	}
}

func (h *Handler) decodeForm(w http.ResponseWriter, r *http.Request) (lead.Form, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		form := lead.NewForm()
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10))
		if err := dec.Decode(&form); err != nil {
			return lead.Form{}, err
		}
		form.DialCode = h.dialCode(form.DialCode)
		return form, nil
	}
	if err := r.ParseForm(); err != nil {
		return lead.Form{}, err
	}
	return h.formFromValues(r), nil
}

// formFromValues reads the CTA form fields. Unknown dial codes fall back to
// the default.
func (h *Handler) formFromValues(r *http.Request) lead.Form {
	return lead.Form{
		FirstName:   r.PostFormValue("first_name"),
		DialCode:    h.dialCode(r.PostFormValue("dial_code")),
		Phone:       r.PostFormValue("phone"),
		CompanyName: r.PostFormValue("company_name"),
		CompanySize: lead.CompanySize(r.PostFormValue("company_size")),
		Consent:     checked(r.PostFormValue("consent")),
		Mode:        formMode(r.PostFormValue("mode")),
		Date:        r.PostFormValue("date"),
		Time: lead.TimeOfDay{
			Hour:   r.PostFormValue("hour"),
			Minute: r.PostFormValue("minute"),
			Period: lead.ParsePeriod(r.PostFormValue("period")),
		},
		Timezone: r.PostFormValue("timezone"),
	}
}

func (h *Handler) dialCode(prefix string) string {
	if h.catalog.HasDialCode(prefix) {
		return prefix
	}
	return lead.DefaultDialCode
}

func formMode(v string) lead.Mode {
	if lead.Mode(v) == lead.ModeSchedule {
		return lead.ModeSchedule
	}
	return lead.ModeCall
}

func checked(v string) bool {
	switch strings.ToLower(v) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

func (h *Handler) logOutcome(st session.State, out lead.Outcome, err error) {
	attrs := []any{
		slog.String("visitor", st.VisitorKey),
		slog.String("state", string(out.State)),
	}
	if out.ID != "" {
		attrs = append(attrs, slog.String("submission_id", out.ID))
	}
	if err != nil {
		attrs = append(attrs, logger.Error(err))
		h.log.Info("lead not placed", attrs...)
		return
	}
	h.log.Info("lead placed", attrs...)
}
