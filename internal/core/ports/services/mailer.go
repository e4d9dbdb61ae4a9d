package services

import "context"

// MessageDetail is one label/value line of a notification e-mail body.
// Details keep their insertion order.
type MessageDetail struct {
	Label string
	Value string
}

// MailSender dispatches a single e-mail. Implementations are fire-and-forget
// from the engine's perspective: no retries, errors surface to the caller.
type MailSender interface {
	SendMail(ctx context.Context, to string, subject string, intro string, details []MessageDetail) error
}
