package notification

import "context"

// Notifier delivers a prepared message to a field responder. The core only
// constructs the message text and target identifier; delivery mechanics
// belong to the implementation.
type Notifier interface {
	Notify(ctx context.Context, recipientPhone, message string) error
}
