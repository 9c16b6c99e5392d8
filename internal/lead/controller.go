package lead

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ai-rd1/website/internal/tracing"
	"github.com/ai-rd1/website/pkg/logger"
)

var (
	// ErrInFlight means the visitor already has a submission running.
	ErrInFlight = errors.New("a submission is already in flight")

	// ErrRateLimited means the visitor's IP ran out of submissions.
	ErrRateLimited = errors.New("too many submissions")
)

// Submitter sends a lead to the call service.
type Submitter interface {
	Submit(ctx context.Context, submissionID string, req LeadRequest) (*CallResponse, error)
}

// Visitor identifies who is submitting. Key is stable per browser session.
type Visitor struct {
	Key       string
	IP        string
	UserAgent string
}

// Controller runs the lead-capture flow: gate, build, send once, report.
type Controller struct {
	submitter Submitter
	notifier  Notifier
	limiter   *RateLimiter
	log       *slog.Logger
	now       func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
	notifyWG sync.WaitGroup
}

// NewController creates a controller. notifier and limiter may be nil.
func NewController(submitter Submitter, notifier Notifier, limiter *RateLimiter, log *slog.Logger) *Controller {
	return &Controller{
		submitter: submitter,
		notifier:  notifier,
		limiter:   limiter,
		log:       log.With(logger.Scope("lead")),
		now:       time.Now,
		inFlight:  make(map[string]struct{}),
	}
}

// InFlight reports whether the visitor has a submission running.
func (c *Controller) InFlight(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inFlight[key]
	return ok
}

func (c *Controller) acquire(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inFlight[key]; busy {
		return false
	}
	c.inFlight[key] = struct{}{}
	return true
}

func (c *Controller) release(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, key)
}

// Back returns the visitor to the blank state; entered values are kept by the caller.
func (c *Controller) Back() Outcome {
	return Idle()
}

// Submit runs one submission. The returned Outcome drives the page; the error
// tells API callers why a submission did not succeed:
//   - ErrNotReady, ErrPastDate, *ValidationError: nothing was sent, outcome is Idle
//   - ErrInFlight: nothing was sent, outcome is Loading
//   - ErrRateLimited: nothing was sent, outcome is Failed
//   - *APIError or a transport error: outcome is Failed
func (c *Controller) Submit(ctx context.Context, v Visitor, form Form) (Outcome, error) {
	form = form.Normalize()
	callType := CallNow
	if form.Scheduling() {
		callType = CallSchedule
	}

	req, err := form.Build(c.now())
	if err != nil {
		result := resultNotReady
		if !errors.Is(err, ErrNotReady) {
			result = resultInvalid
		}
		submissions.WithLabelValues(string(callType), result).Inc()
		return Idle(), err
	}
	if err := req.Validate(); err != nil {
		submissions.WithLabelValues(string(callType), resultInvalid).Inc()
		return Idle(), err
	}

	if !c.acquire(v.Key) {
		submissions.WithLabelValues(string(callType), resultInFlight).Inc()
		return Loading(), ErrInFlight
	}
	defer c.release(v.Key)

	if !c.limiter.Allow(v.IP) {
		submissions.WithLabelValues(string(callType), resultRateLimited).Inc()
		c.log.Warn("lead submission rate limited", slog.String("ip", v.IP))
		return Failed(RateLimitedMessage), ErrRateLimited
	}

	id := uuid.NewString()
	ctx, span := tracing.Start(ctx, "lead.submit",
		attribute.String("lead.submission_id", id),
		attribute.String("lead.call_type", string(req.CallType)),
		attribute.String("lead.company_size", string(req.CompanySize)),
	)
	defer span.End()

	if _, err := c.submitter.Submit(ctx, id, req); err != nil {
		tracing.Fail(span, err, "call service failed")

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			submissions.WithLabelValues(string(callType), resultRejected).Inc()
			return Failed(apiErr.Detail), err
		}
		submissions.WithLabelValues(string(callType), resultUnreachable).Inc()
		c.log.Error("lead submission failed",
			slog.String("submission_id", id),
			logger.Error(err))
		return Failed(FallbackMessage), fmt.Errorf("submit lead %s: %w", id, err)
	}

	submissions.WithLabelValues(string(callType), resultSuccess).Inc()
	c.log.Info("lead submitted",
		slog.String("submission_id", id),
		slog.String("call_type", string(req.CallType)),
		slog.String("company_size", string(req.CompanySize)),
	)

	c.notify(context.WithoutCancel(ctx), Submission{
		ID:          id,
		Request:     req,
		Form:        form,
		SubmittedAt: c.now(),
		IP:          v.IP,
		UserAgent:   v.UserAgent,
	})

	if req.CallType == CallSchedule {
		return ScheduleSucceeded(id, req.Name, form.DisplayDate(), form.Time.String()), nil
	}
	return CallSucceeded(id, req.Name, req.Phone), nil
}

// notify delivers in the background; Wait blocks until it is done.
func (c *Controller) notify(ctx context.Context, s Submission) {
	if c.notifier == nil {
		return
	}
	c.notifyWG.Add(1)
	go func() {
		defer c.notifyWG.Done()
		if err := c.notifier.Notify(ctx, s); err != nil {
			c.log.Warn("lead notification failed",
				slog.String("submission_id", s.ID),
				logger.Error(err))
		}
	}()
}

// Wait blocks until background notifications have finished.
func (c *Controller) Wait() {
	c.notifyWG.Wait()
}
