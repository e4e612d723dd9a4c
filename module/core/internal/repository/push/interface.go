package push

import "context"

// Sender delivers a push notification to a single device token.
// Delivery is best-effort; callers treat errors as log-and-continue.
type Sender interface {
	Send(ctx context.Context, token, title, message string) error
}
