package phone

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by senders missing credentials.
var ErrNotConfigured = errors.New("sms provider not configured")

// Sender delivers a single text message to one phone number.
type Sender interface {
	SendSMS(ctx context.Context, phoneNumber, message string) error
}

// DisabledSender is used when no provider is configured; every send fails
// with ErrNotConfigured.
type DisabledSender struct{}

func (DisabledSender) SendSMS(context.Context, string, string) error {
	return ErrNotConfigured
}
