// Package sender composes and delivers account e-mails.
package sender

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/tutor-marketplace/internal/config"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/sl"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/smtp"
)

// Service sends verification mail through an SMTP dialer.
type Service struct {
	dialer      smtp.Dialer
	from        string
	frontendURL string
	linkTTL     time.Duration
	log         *slog.Logger
}

// New creates a Service using the sender address and link base from cfg.
// linkTTL is the verification token lifetime quoted in the mail; zero omits it.
func New(cfg config.Mail, linkTTL time.Duration, dialer smtp.Dialer, log *slog.Logger) *Service {
	return &Service{
		dialer:      dialer,
		from:        cfg.From,
		frontendURL: strings.TrimRight(cfg.FrontendURL, "/"),
		linkTTL:     linkTTL,
		log:         log,
	}
}

// VerificationLink is the page a new account opens to confirm its address.
func (s *Service) VerificationLink(token string) string {
	return s.frontendURL + "/verify-email/" + token
}

// SendVerification mails the verification link for token to the address.
func (s *Service) SendVerification(ctx context.Context, to, firstName, token string) error {
	const op = "sender.SendVerification"

	body := fmt.Sprintf("Hello %s,\r\n\r\n"+
		"Please verify your email address by opening the link below:\r\n\r\n%s\r\n",
		firstName, s.VerificationLink(token))
	if s.linkTTL > 0 {
		body += fmt.Sprintf("\r\nThe link expires in %s.\r\n", lifetime(s.linkTTL))
	}

	if err := s.send(ctx, []string{to}, "Email Verification", body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// lifetime renders d in whole hours or minutes, e.g. "1 hour" or "90 minutes".
func lifetime(d time.Duration) string {
	if d%time.Hour == 0 {
		return plural(int(d/time.Hour), "hour")
	}
	if d%time.Minute == 0 {
		return plural(int(d/time.Minute), "minute")
	}
	return d.String()
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func (s *Service) send(ctx context.Context, to []string, subject, body string) error {
	log := s.log.With(slog.String("to", strings.Join(to, ",")))

	msg := strings.Join([]string{
		"From: " + s.from,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	client, err := s.dialer.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err = client.Mail(s.from); err != nil {
		log.Error("failed to set MAIL FROM", slog.String("from", s.from), sl.Err(err))
		return err
	}
	for _, addr := range to {
		if err = client.Rcpt(addr); err != nil {
			log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		log.Error("failed to get data writer", sl.Err(err))
		return err
	}
	if _, err = wc.Write([]byte(msg)); err != nil {
		log.Error("failed to write email body", sl.Err(err))
		_ = wc.Close()
		return err
	}
	if err = wc.Close(); err != nil {
		log.Error("failed to close data writer", sl.Err(err))
		return err
	}
	if err = client.Quit(); err != nil {
		log.Error("failed to quit SMTP session", sl.Err(err))
		return err
	}

	log.Info("email sent")
	return nil
}
