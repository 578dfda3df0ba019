package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/utils"
)

type logEmailProvider struct {
}

func (p logEmailProvider) Send(ctx context.Context, email Email) error {
	zlog := zerolog.Ctx(ctx).With().
		Str("from", email.From).
		Strs("to", email.To).
		Str("reply_to", email.ReplyTo).
		Str("subject", email.Subject).
		Str("content", email.Text).
		Logger()
	zlog.Debug().Msg("Sending Email")
	return nil
}

func newLogEmailProvider() Sender {
	return new(logEmailProvider)
}

type resendEmailProvider struct {
	client *resend.Client
}

func (p resendEmailProvider) Send(ctx context.Context, email Email) error {
	res, err := p.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
	})
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("email_id", res.Id).Strs("to", email.To).Msg("Email sent")
	return nil
}

func newResendEmailProvider(apiKey, baseURL string) Sender {
	client := resend.NewClient(apiKey)
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		client.BaseURL = utils.Must(url.Parse(baseURL))
	}
	return &resendEmailProvider{client: client}
}
