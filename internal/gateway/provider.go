package gateway

import (
	"context"
)

type Email struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

type Sender interface {
	Send(ctx context.Context, email Email) error
}

const (
	ProviderResend = "resend"
	ProviderLog    = "log"
)

type Config struct {
	// resend or log
	Provider      string
	ResendAPIKey  string
	ResendBaseURL string
}

// NewEmailProvider returns nil when the resend provider is selected without
// an API key. Callers treat a nil Sender as "mail not configured".
func NewEmailProvider(conf Config) Sender {
	switch conf.Provider {
	case ProviderLog:
		return newLogEmailProvider()
	default:
		if conf.ResendAPIKey == "" {
			return nil
		}
		return newResendEmailProvider(conf.ResendAPIKey, conf.ResendBaseURL)
	}
}
