package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
	"github.com/sahilKumar1122/portfolio-api/internal/gateway"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []gateway.Email
	err  error
}

func (f *fakeSender) Send(ctx context.Context, email gateway.Email) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, email)
	return nil
}

var testConf = Config{From: "Portfolio Contact <onboarding@resend.dev>", To: []string{"owner@example.com"}}

func validSubmission() Submission {
	return Submission{Name: "Ada", Email: "ada@example.com", Message: "Hello\nthere"}
}

func TestSubmitValidation(t *testing.T) {
	s := NewService(&fakeSender{}, testConf)
	ctx := context.Background()

	cases := []struct {
		name string
		sub  Submission
		want error
	}{
		{"empty name", Submission{Name: "", Email: "a@b.co", Message: "hi"}, apperr.ErrMissingRequiredFields},
		{"missing email", Submission{Name: "Ada", Message: "hi"}, apperr.ErrMissingRequiredFields},
		{"no at sign", Submission{Name: "Ada", Email: "ada.example.com", Message: "hi"}, apperr.ErrInvalidEmail},
		{"no dot in domain", Submission{Name: "Ada", Email: "ada@example", Message: "hi"}, apperr.ErrInvalidEmail},
		{"space inside", Submission{Name: "Ada", Email: "a da@example.com", Message: "hi"}, apperr.ErrInvalidEmail},
		{"padded email", Submission{Name: "Ada", Email: " ada@example.com ", Message: "hi"}, apperr.ErrInvalidEmail},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.ErrorIs(t, s.Submit(ctx, c.sub), c.want)
		})
	}
}

func TestSubmitAcceptsWhitespaceOnlyFields(t *testing.T) {
	sender := &fakeSender{}
	s := NewService(sender, testConf)

	// non-empty strings pass the required check even when blank
	require.NoError(t, s.Submit(context.Background(), Submission{Name: "   ", Email: "ada@example.com", Message: " \n "}))
	require.Len(t, sender.sent, 1)
	require.Equal(t, "Portfolio:  sent you a message", sender.sent[0].Subject)
}

func TestSubmitNotConfigured(t *testing.T) {
	s := NewService(nil, testConf)
	require.ErrorIs(t, s.Submit(context.Background(), validSubmission()), apperr.ErrMailNotConfigured)

	// validation still runs first
	require.ErrorIs(t, s.Submit(context.Background(), Submission{}), apperr.ErrMissingRequiredFields)
}

func TestSubmitSendsEmail(t *testing.T) {
	sender := &fakeSender{}
	s := NewService(sender, testConf)

	sub := validSubmission()
	sub.Name = "  <b>Ada</b> "
	require.NoError(t, s.Submit(context.Background(), sub))
	require.Len(t, sender.sent, 1)

	email := sender.sent[0]
	require.Equal(t, testConf.From, email.From)
	require.Equal(t, testConf.To, email.To)
	require.Equal(t, "ada@example.com", email.ReplyTo)
	require.Equal(t, "Portfolio: <b>Ada</b> sent you a message", email.Subject)
	require.Contains(t, email.HTML, "Hello<br>there")
	require.Contains(t, email.HTML, "&lt;b&gt;Ada&lt;/b&gt;")
	require.NotContains(t, email.HTML, "<b>Ada</b>")
	require.Contains(t, email.Text, "Hello\nthere")
}

func TestSubmitDispatchErrors(t *testing.T) {
	s := NewService(&fakeSender{err: errors.New("resend: [ERROR]: API key is invalid")}, testConf)
	require.ErrorIs(t, s.Submit(context.Background(), validSubmission()), apperr.ErrMailConfiguration)

	s = NewService(&fakeSender{err: errors.New("connection reset")}, testConf)
	err := s.Submit(context.Background(), validSubmission())
	require.ErrorIs(t, err, apperr.ErrMailDispatchFailed)
	require.Contains(t, err.Error(), "connection reset")
}

func TestNl2br(t *testing.T) {
	require.Equal(t, "a<br>b<br>&lt;c&gt;", string(nl2br("a\r\nb\n<c>")))
}
