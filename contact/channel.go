package contact

import (
	"context"
	"fmt"

	"github.com/take-two/storefront/models"
)

// Channel delivers a contact message to an external service. Send returns an
// opaque acknowledgment reference on success.
type Channel interface {
	Send(ctx context.Context, msg models.ContactMessage) (string, error)
}

// DeliveryError carries the channel's status code. The code selects between
// a small set of canned user-facing messages; the cause is for logs only.
type DeliveryError struct {
	Status int
	Cause  error
}

func (e *DeliveryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("delivery failed (status %d): %v", e.Status, e.Cause)
	}
	return fmt.Sprintf("delivery failed (status %d)", e.Status)
}

func (e *DeliveryError) Unwrap() error {
	return e.Cause
}

// UserMessage maps a delivery failure to the message shown to the user. The
// underlying error is never displayed verbatim.
func UserMessage(err error) string {
	if de, ok := err.(*DeliveryError); ok {
		switch de.Status {
		case 400:
			return "Email template configuration error. Please contact support."
		case 401:
			return "Email authentication error. Please contact support."
		}
	}
	return "Something went wrong while sending. Please try again."
}
