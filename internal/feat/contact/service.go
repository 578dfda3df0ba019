package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
	"github.com/sahilKumar1122/portfolio-api/internal/gateway"
	"github.com/sahilKumar1122/portfolio-api/internal/utils/emailvalidator"
)

type Service interface {
	// Submit validates the submission and mails it to the site owner.
	Submit(ctx context.Context, s Submission) error
}

// NewService accepts a nil sender, in which case every valid submission fails
// with apperr.ErrMailNotConfigured.
func NewService(sender gateway.Sender, conf Config) Service {
	return serviceImpl{sender: sender, conf: conf}
}

type serviceImpl struct {
	sender gateway.Sender
	conf   Config
}

func (s serviceImpl) Submit(ctx context.Context, sub Submission) error {
	zlog := zerolog.Ctx(ctx)
	// validation sees the values as submitted, trimming is only for the email body
	if sub.hasMissingFields() {
		return apperr.ErrMissingRequiredFields
	}
	if err := emailvalidator.IsValidEmailErr(sub.Email); err != nil {
		return err
	}
	sub = sub.trimmed()

	if s.sender == nil {
		zlog.Error().Msg("mail provider is not configured, set RESEND_API_KEY or MAIL_PROVIDER=log")
		return apperr.ErrMailNotConfigured
	}

	html, err := renderHTML(sub)
	if err != nil {
		zlog.Err(err).Msg("can not render the contact email html")
		return fmt.Errorf("%w: %w", apperr.ErrMailDispatchFailed, err)
	}
	text, err := renderText(sub)
	if err != nil {
		zlog.Err(err).Msg("can not render the contact email text")
		return fmt.Errorf("%w: %w", apperr.ErrMailDispatchFailed, err)
	}

	err = s.sender.Send(ctx, gateway.Email{
		From:    s.conf.From,
		To:      s.conf.To,
		ReplyTo: sub.Email,
		Subject: subject(sub.Name),
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		zlog.Err(err).Msg("Error sending email")
		if strings.Contains(err.Error(), "API key") {
			return apperr.ErrMailConfiguration
		}
		return fmt.Errorf("%w: %w", apperr.ErrMailDispatchFailed, err)
	}

	return nil
}
