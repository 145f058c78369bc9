package services

import "context"

// Notifier sends best-effort member notifications (SMS today). Sends are
// fire-and-forget: implementations must not block the caller and must
// swallow delivery failures after logging them.
type Notifier interface {
	// NotifySMS queues a text message for the given mobile number.
	NotifySMS(ctx context.Context, mobile string, message string)

	// Close drains the send queue and releases resources.
	Close()
}
