package service

import "context"

// EmailSender submits one message to the delivery provider.
type EmailSender interface {
	SendEmail(ctx context.Context, from EmailAddress, to []EmailAddress, email Email) error
}

type EmailAddress struct {
	Name    string
	Address string
}

type Email struct {
	Subject string
	HTML    string
}
