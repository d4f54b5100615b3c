package contact

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/take-two/storefront/models"
)

type State int

const (
	StateIdle State = iota
	StateValidating
	StateSending
	StateSent
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSending:
		return "sending"
	case StateSent:
		return "sent"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the resolution of one submission. Superseded marks a send whose
// resolution arrived after a newer submission took over; it carries no final
// user-visible result.
type Outcome struct {
	OK         bool
	Superseded bool
	AckRef     string
	Message    string
}

// Form drives one contact form through Idle → Validating → Sending →
// Sent / Failed. A successful send clears the retained fields; a failure
// keeps them so the user can resubmit. At most one outstanding send produces
// a final result: a newer submission supersedes the older one's resolution.
type Form struct {
	mu       sync.Mutex
	state    State
	fields   models.ContactMessage
	inflight uint64
	channel  Channel
	logger   *zap.Logger
}

func NewForm(channel Channel, logger *zap.Logger) *Form {
	return &Form{channel: channel, logger: logger}
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Fields returns the currently retained field values.
func (f *Form) Fields() models.ContactMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Submit validates and, on success, sends asynchronously. A validation
// failure is returned immediately as a *FieldError and the form drops back
// to Idle without any external call. Otherwise done is invoked exactly once
// when the send resolves.
func (f *Form) Submit(ctx context.Context, msg models.ContactMessage, done func(Outcome)) error {
	f.mu.Lock()
	f.state = StateValidating
	f.fields = msg

	if err := ValidateMessage(msg); err != nil {
		f.state = StateIdle
		f.mu.Unlock()
		return err
	}

	f.state = StateSending
	f.inflight++
	token := f.inflight
	f.mu.Unlock()

	go func() {
		ack, err := f.channel.Send(ctx, msg)
		f.resolve(token, ack, err, done)
	}()
	return nil
}

func (f *Form) resolve(token uint64, ack string, err error, done func(Outcome)) {
	f.mu.Lock()

	if token != f.inflight {
		f.mu.Unlock()
		f.logger.Debug("dropping superseded send resolution")
		if done != nil {
			done(Outcome{Superseded: true})
		}
		return
	}

	var out Outcome
	if err != nil {
		// Keep the fields so the user can resubmit.
		f.state = StateFailed
		out = Outcome{Message: UserMessage(err)}
		f.mu.Unlock()
		f.logger.Warn("contact send failed", zap.Error(err))
	} else {
		f.state = StateSent
		f.fields = models.ContactMessage{}
		out = Outcome{OK: true, AckRef: ack, Message: "Your message has been sent!"}
		f.mu.Unlock()
		f.logger.Info("contact send acknowledged", zap.String("ack_ref", ack))
	}

	if done != nil {
		done(out)
	}
}
