package contact

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/take-two/storefront/models"
)

type sendResult struct {
	ack string
	err error
}

// queueChannel hands each Send call its own gate so tests can resolve sends
// in a chosen order.
type queueChannel struct {
	mu      sync.Mutex
	calls   []chan sendResult
	started chan struct{}
}

func newQueueChannel() *queueChannel {
	return &queueChannel{started: make(chan struct{}, 8)}
}

func (c *queueChannel) Send(_ context.Context, _ models.ContactMessage) (string, error) {
	gate := make(chan sendResult, 1)
	c.mu.Lock()
	c.calls = append(c.calls, gate)
	c.mu.Unlock()
	c.started <- struct{}{}

	r := <-gate
	return r.ack, r.err
}

func (c *queueChannel) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

func (c *queueChannel) resolve(i int, r sendResult) {
	c.mu.Lock()
	gate := c.calls[i]
	c.mu.Unlock()
	gate <- r
}

func validMessage() models.ContactMessage {
	return models.ContactMessage{Name: "Sara", Email: "sara@example.com", Message: "Hello there"}
}

func waitOutcome(t *testing.T, ch chan Outcome) Outcome {
	t.Helper()
	select {
	case o := <-ch:
		return o
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for outcome")
		return Outcome{}
	}
}

func TestValidationRejectsBeforeAnySend(t *testing.T) {
	cases := []struct {
		name  string
		msg   models.ContactMessage
		field string
	}{
		{"empty message", models.ContactMessage{Name: "Sara", Email: "sara@example.com"}, "message"},
		{"empty name", models.ContactMessage{Email: "sara@example.com", Message: "hi"}, "name"},
		{"empty email", models.ContactMessage{Name: "Sara", Message: "hi"}, "email"},
		{"malformed email", models.ContactMessage{Name: "Sara", Email: "not-an-email", Message: "hi"}, "email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ch := newQueueChannel()
			form := NewForm(ch, zap.NewNop())

			err := form.Submit(context.Background(), tc.msg, nil)
			var fe *FieldError
			assert.ErrorAs(t, err, &fe)
			assert.Equal(t, tc.field, fe.Field)
			assert.Equal(t, StateIdle, form.State())
			assert.Zero(t, ch.callCount())
		})
	}
}

func TestEmailPattern(t *testing.T) {
	assert.Error(t, ValidateMessage(models.ContactMessage{Name: "a", Email: "not-an-email", Message: "m"}))
	assert.Error(t, ValidateMessage(models.ContactMessage{Name: "a", Email: "a@b", Message: "m"}))
	assert.Error(t, ValidateMessage(models.ContactMessage{Name: "a", Email: "a b@c.co", Message: "m"}))
	assert.NoError(t, ValidateMessage(models.ContactMessage{Name: "a", Email: "a@b.co", Message: "m"}))
}

func TestSuccessfulSendClearsForm(t *testing.T) {
	ch := newQueueChannel()
	form := NewForm(ch, zap.NewNop())
	outcomes := make(chan Outcome, 1)

	assert.NoError(t, form.Submit(context.Background(), validMessage(), func(o Outcome) { outcomes <- o }))
	assert.Equal(t, StateSending, form.State())

	<-ch.started
	ch.resolve(0, sendResult{ack: "msg-123"})

	o := waitOutcome(t, outcomes)
	assert.True(t, o.OK)
	assert.Equal(t, "msg-123", o.AckRef)
	assert.Equal(t, StateSent, form.State())
	assert.Equal(t, models.ContactMessage{}, form.Fields())
}

func TestFailedSendKeepsFormForResubmission(t *testing.T) {
	ch := newQueueChannel()
	form := NewForm(ch, zap.NewNop())
	outcomes := make(chan Outcome, 1)

	msg := validMessage()
	assert.NoError(t, form.Submit(context.Background(), msg, func(o Outcome) { outcomes <- o }))
	<-ch.started
	ch.resolve(0, sendResult{err: &DeliveryError{Status: 500}})

	o := waitOutcome(t, outcomes)
	assert.False(t, o.OK)
	assert.Equal(t, StateFailed, form.State())
	assert.Equal(t, msg, form.Fields(), "a failed send must not clear the form")
}

func TestFailureMessages(t *testing.T) {
	assert.Contains(t, UserMessage(&DeliveryError{Status: 400}), "template configuration")
	assert.Contains(t, UserMessage(&DeliveryError{Status: 401}), "authentication")
	assert.Contains(t, UserMessage(&DeliveryError{Status: 503}), "try again")
	assert.Contains(t, UserMessage(context.DeadlineExceeded), "try again")
}

func TestSupersededSendProducesNoFinalResult(t *testing.T) {
	ch := newQueueChannel()
	form := NewForm(ch, zap.NewNop())
	first := make(chan Outcome, 1)
	second := make(chan Outcome, 1)

	assert.NoError(t, form.Submit(context.Background(), validMessage(), func(o Outcome) { first <- o }))
	<-ch.started

	newer := validMessage()
	newer.Message = "Updated message"
	assert.NoError(t, form.Submit(context.Background(), newer, func(o Outcome) { second <- o }))
	<-ch.started

	// The first send resolves after being superseded; its success must not
	// become the final user-visible result.
	ch.resolve(0, sendResult{ack: "stale-ack"})
	o1 := waitOutcome(t, first)
	assert.True(t, o1.Superseded)
	assert.Equal(t, StateSending, form.State())

	ch.resolve(1, sendResult{ack: "fresh-ack"})
	o2 := waitOutcome(t, second)
	assert.True(t, o2.OK)
	assert.Equal(t, "fresh-ack", o2.AckRef)
	assert.Equal(t, StateSent, form.State())
}

func TestStaleResolutionAfterFinalStateIsIgnored(t *testing.T) {
	ch := newQueueChannel()
	form := NewForm(ch, zap.NewNop())
	first := make(chan Outcome, 1)
	second := make(chan Outcome, 1)

	assert.NoError(t, form.Submit(context.Background(), validMessage(), func(o Outcome) { first <- o }))
	<-ch.started
	assert.NoError(t, form.Submit(context.Background(), validMessage(), func(o Outcome) { second <- o }))
	<-ch.started

	ch.resolve(1, sendResult{ack: "fresh-ack"})
	o2 := waitOutcome(t, second)
	assert.True(t, o2.OK)
	assert.Equal(t, StateSent, form.State())

	ch.resolve(0, sendResult{err: &DeliveryError{Status: 500}})
	o1 := waitOutcome(t, first)
	assert.True(t, o1.Superseded)
	assert.Equal(t, StateSent, form.State(), "stale failure must not flip a final state")
}
