package notification

import "context"

// Sender delivers one SMS message. Implementations make a single
// attempt with a bounded timeout; retries are the caller's problem and
// nobody here has one.
type Sender interface {
	Send(ctx context.Context, phone string, message string) error
}

// DisabledSender short-circuits every send with success. It stands in
// for the gateway when no API token is configured and in tests.
type DisabledSender struct{}

func (DisabledSender) Send(ctx context.Context, phone string, message string) error {
	return nil
}
