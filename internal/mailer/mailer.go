// Package mailer delivers verification email through an external mail
// provider.  Delivery is strictly best effort: the signup transaction has
// already committed when the mailer runs, so every failure is reported
// back as an error for the handler to flash, never as a panic or an
// aborted request.
package mailer

import "context"

// Mailer is the single send-mail capability the application depends on.
type Mailer interface {
	// SendVerification attempts to deliver the verification link for the
	// given token to the address. It attempts delivery exactly once.
	SendVerification(ctx context.Context, email, token string) error
}

// Noop is used when no mail provider is configured (local development
// and tests).  It reports success without sending anything; the token
// can be read from the database instead.
type Noop struct{}

func (Noop) SendVerification(ctx context.Context, email, token string) error { return nil }
