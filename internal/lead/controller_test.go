package lead

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-rd1/website/pkg/logger"
)

type fakeSubmitter struct {
	mu    sync.Mutex
	calls []LeadRequest
	err   error
	// block, when set, holds Submit until it is closed
	block   chan struct{}
	started chan struct{}
}

func (f *fakeSubmitter) Submit(ctx context.Context, id string, req LeadRequest) (*CallResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return &CallResponse{ID: "call-" + id}, nil
}

func (f *fakeSubmitter) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type recordingNotifier struct {
	count atomic.Int32
	err   error
}

func (n *recordingNotifier) Notify(context.Context, Submission) error {
	n.count.Add(1)
	return n.err
}

func newTestController(sub Submitter, n Notifier, limiter *RateLimiter) *Controller {
	c := NewController(sub, n, limiter, logger.Discard())
	c.now = func() time.Time { return fixedNow }
	return c
}

var visitor = Visitor{Key: "session-1", IP: "203.0.113.7"}

func TestControllerSubmit_CallNowSuccess(t *testing.T) {
	sub := &fakeSubmitter{}
	notifier := &recordingNotifier{}
	c := newTestController(sub, notifier, nil)

	out, err := c.Submit(context.Background(), visitor, readyCallForm())
	require.NoError(t, err)
	c.Wait()

	assert.Equal(t, StateSuccess, out.State)
	assert.Equal(t, PanelCallSuccess, out.Panel())
	assert.Equal(t, "+15550001234", out.Phone)
	assert.Equal(t, sub.calls[0].Phone, out.Phone)
	assert.Equal(t, "Steven", out.Name)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 1, sub.callCount())
	assert.EqualValues(t, 1, notifier.count.Load())
	assert.False(t, c.InFlight(visitor.Key))
}

func TestControllerSubmit_ScheduleSuccess(t *testing.T) {
	sub := &fakeSubmitter{}
	c := newTestController(sub, nil, nil)

	out, err := c.Submit(context.Background(), visitor, readyScheduleForm())
	require.NoError(t, err)

	assert.Equal(t, PanelScheduleSuccess, out.Panel())
	assert.Equal(t, "Tuesday, October 20", out.Date)
	assert.Equal(t, "09:30 PM", out.Time)
	require.Equal(t, 1, sub.callCount())
	assert.Equal(t, CallSchedule, sub.calls[0].CallType)
	assert.Equal(t, "2026-10-20T21:30:00+01:00", sub.calls[0].ScheduledAt)
}

func TestControllerSubmit_BlocksIncompleteForms(t *testing.T) {
	tests := []struct {
		name   string
		form   Form
		target error
	}{
		{"empty form", NewForm(), ErrNotReady},
		{"schedule without time", func() Form { f := readyScheduleForm(); f.Time.Minute = ""; return f }(), ErrNotReady},
		{"past date", func() Form { f := readyScheduleForm(); f.Date = "2026-01-01"; return f }(), ErrPastDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &fakeSubmitter{}
			c := newTestController(sub, nil, nil)

			out, err := c.Submit(context.Background(), visitor, tt.form)

			assert.ErrorIs(t, err, tt.target)
			assert.Equal(t, StateIdle, out.State)
			assert.Equal(t, 0, sub.callCount())
		})
	}
}

func TestControllerSubmit_InvalidRequestNotSent(t *testing.T) {
	sub := &fakeSubmitter{}
	c := newTestController(sub, nil, nil)

	f := readyCallForm()
	f.CompanySize = "1-2"
	_, err := c.Submit(context.Background(), visitor, f)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, sub.callCount())
}

func TestControllerSubmit_ServerDetailShownInErrorPanel(t *testing.T) {
	sub := &fakeSubmitter{err: &APIError{StatusCode: 400, Detail: "This number cannot receive calls."}}
	notifier := &recordingNotifier{}
	c := newTestController(sub, notifier, nil)

	out, err := c.Submit(context.Background(), visitor, readyCallForm())
	c.Wait()

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, PanelError, out.Panel())
	assert.Equal(t, "This number cannot receive calls.", out.Message)
	assert.EqualValues(t, 0, notifier.count.Load())
}

func TestControllerSubmit_TransportFailureUsesFallback(t *testing.T) {
	c := newTestController(&fakeSubmitter{err: errors.New("dial tcp: connection refused")}, nil, nil)

	out, err := c.Submit(context.Background(), visitor, readyCallForm())

	require.Error(t, err)
	assert.Equal(t, PanelError, out.Panel())
	assert.Equal(t, FallbackMessage, out.Message)
}

func TestControllerSubmit_RejectsSecondSubmitWhileInFlight(t *testing.T) {
	sub := &fakeSubmitter{block: make(chan struct{}), started: make(chan struct{}, 1)}
	c := newTestController(sub, nil, nil)

	done := make(chan Outcome, 1)
	go func() {
		out, _ := c.Submit(context.Background(), visitor, readyCallForm())
		done <- out
	}()
	<-sub.started

	assert.True(t, c.InFlight(visitor.Key))
	out, err := c.Submit(context.Background(), visitor, readyCallForm())
	assert.ErrorIs(t, err, ErrInFlight)
	assert.Equal(t, StateLoading, out.State)
	assert.Equal(t, PanelForm, out.Panel())

	// Another visitor is not affected.
	other := Visitor{Key: "session-2", IP: "198.51.100.1"}
	go func() { _, _ = c.Submit(context.Background(), other, readyCallForm()) }()
	<-sub.started

	close(sub.block)
	assert.Equal(t, StateSuccess, (<-done).State)
	assert.Eventually(t, func() bool { return !c.InFlight(other.Key) }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 2, sub.callCount())
}

func TestControllerSubmit_RateLimited(t *testing.T) {
	sub := &fakeSubmitter{}
	c := newTestController(sub, nil, NewRateLimiter(1, 1))

	_, err := c.Submit(context.Background(), visitor, readyCallForm())
	require.NoError(t, err)

	out, err := c.Submit(context.Background(), visitor, readyCallForm())
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, RateLimitedMessage, out.Message)
	assert.Equal(t, 1, sub.callCount())
}

func TestControllerSubmit_NotificationFailureKeepsSuccess(t *testing.T) {
	c := newTestController(&fakeSubmitter{}, &recordingNotifier{err: errors.New("mailgun down")}, nil)

	out, err := c.Submit(context.Background(), visitor, readyCallForm())
	c.Wait()

	require.NoError(t, err)
	assert.Equal(t, StateSuccess, out.State)
}

func TestControllerBack(t *testing.T) {
	c := newTestController(&fakeSubmitter{}, nil, nil)
	assert.Equal(t, Idle(), c.Back())
	assert.Equal(t, PanelForm, c.Back().Panel())
}
