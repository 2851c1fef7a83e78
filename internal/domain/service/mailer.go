package service

import "context"

// Mailer defines the interface for outbound transactional mail.
type Mailer interface {
	// SendOTP delivers a one-time verification code to the address.
	SendOTP(ctx context.Context, to, code string) error
}
