// Package session keeps the visitor's lead form and last outcome in a signed
// cookie so that a redirect after POST renders the same CTA state.
package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/fx"

	"github.com/ai-rd1/website/internal/config"
	"github.com/ai-rd1/website/internal/lead"
	"github.com/ai-rd1/website/pkg/logger"
)

const (
	cookieName = "ai_rd1_lead"
	maxAge     = 24 * 60 * 60

	keyVisitor = "visitor"
	keyForm    = "form"
	keyOutcome = "outcome"
)

var Module = fx.Module("session",
	fx.Provide(NewStore),
)

// State is what one visitor's cookie carries.
type State struct {
	VisitorKey string
	Form       lead.Form
	Outcome    lead.Outcome
}

// Store reads and writes State through a gorilla/sessions cookie store.
type Store struct {
	cookies *sessions.CookieStore
	log     *slog.Logger
}

// NewStore creates the store. Without SESSION_SECRET a random key is used,
// so sessions do not survive a restart.
func NewStore(cfg *config.Config, log *slog.Logger) *Store {
	log = log.With(logger.Scope("session"))

	secret := []byte(cfg.Session.Secret)
	if len(secret) == 0 {
		log.Warn("SESSION_SECRET not set, using a random key")
		secret = securecookie.GenerateRandomKey(32)
	}

	cookies := sessions.NewCookieStore(secret)
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cfg.Session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{cookies: cookies, log: log}
}

// Load returns the visitor's state. A missing or unreadable cookie yields a
// fresh State with a new visitor key, a blank form and an Idle outcome.
func (s *Store) Load(r *http.Request) State {
	st := State{Form: lead.NewForm(), Outcome: lead.Idle()}

	sess, err := s.cookies.Get(r, cookieName)
	if err != nil {
		s.log.Debug("discarding unreadable session", logger.Error(err))
	}

	if key, ok := sess.Values[keyVisitor].(string); ok && key != "" {
		st.VisitorKey = key
	} else {
		st.VisitorKey = uuid.NewString()
	}
	decode(s.log, sess, keyForm, &st.Form)
	decode(s.log, sess, keyOutcome, &st.Outcome)
	return st
}

// Save writes st to the response cookie.
func (s *Store) Save(w http.ResponseWriter, r *http.Request, st State) error {
	sess, _ := s.cookies.Get(r, cookieName)

	form, err := json.Marshal(st.Form)
	if err != nil {
		return fmt.Errorf("encode form: %w", err)
	}
	outcome, err := json.Marshal(st.Outcome)
	if err != nil {
		return fmt.Errorf("encode outcome: %w", err)
	}

	sess.Values[keyVisitor] = st.VisitorKey
	sess.Values[keyForm] = string(form)
	sess.Values[keyOutcome] = string(outcome)

	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// decode replaces *dst only when the stored value parses; a corrupt value
// leaves the default in place.
func decode[T any](log *slog.Logger, sess *sessions.Session, key string, dst *T) {
	raw, ok := sess.Values[key].(string)
	if !ok || raw == "" {
		return
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Debug("discarding corrupt session value", slog.String("key", key), logger.Error(err))
		return
	}
	*dst = v
}
