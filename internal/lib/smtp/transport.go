package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/smtp"

	"github.com/magabrotheeeer/tutor-marketplace/internal/config"
	"github.com/magabrotheeeer/tutor-marketplace/internal/lib/sl"
)

// ErrNoStartTLS is returned when the server cannot upgrade the connection.
var ErrNoStartTLS = errors.New("smtp server does not support STARTTLS")

// Transport connects to the configured server with STARTTLS and PLAIN auth.
type Transport struct {
	cfg config.SMTP
	log *slog.Logger
}

type clientWrapper struct {
	client *smtp.Client
}

func (w *clientWrapper) Mail(from string) error        { return w.client.Mail(from) }
func (w *clientWrapper) Rcpt(to string) error          { return w.client.Rcpt(to) }
func (w *clientWrapper) Data() (io.WriteCloser, error) { return w.client.Data() }
func (w *clientWrapper) Quit() error                   { return w.client.Quit() }
func (w *clientWrapper) Close() error                  { return w.client.Close() }

// NewTransport creates a Transport.
func NewTransport(cfg config.SMTP, log *slog.Logger) *Transport {
	return &Transport{cfg: cfg, log: log}
}

// Connect dials the server, upgrades to TLS and authenticates.
func (t *Transport) Connect(ctx context.Context) (Client, error) {
	const op = "smtp.Connect"
	log := t.log.With(sl.Op(op))

	if t.cfg.SMTPHost == "" {
		return nil, fmt.Errorf("%s: smtp host is not configured", op)
	}
	addr := net.JoinHostPort(t.cfg.SMTPHost, t.cfg.SMTPPort)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		log.Error("failed to dial SMTP server", slog.String("addr", addr), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	client, err := smtp.NewClient(conn, t.cfg.SMTPHost)
	if err != nil {
		log.Error("failed to create SMTP client", sl.Err(err))
		if closeErr := conn.Close(); closeErr != nil {
			log.Error("failed to close connection", sl.Err(closeErr))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	fail := func(err error) (Client, error) {
		if closeErr := client.Close(); closeErr != nil {
			log.Error("failed to close client", sl.Err(closeErr))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if ok, _ := client.Extension("STARTTLS"); !ok {
		log.Error("SMTP server does not support STARTTLS")
		return fail(ErrNoStartTLS)
	}
	if err = client.StartTLS(&tls.Config{
		ServerName: t.cfg.SMTPHost,
		MinVersion: tls.VersionTLS12,
	}); err != nil {
		log.Error("failed to start TLS", sl.Err(err))
		return fail(err)
	}

	if t.cfg.SMTPUser != "" {
		auth := smtp.PlainAuth("", t.cfg.SMTPUser, t.cfg.SMTPPass, t.cfg.SMTPHost)
		if err = client.Auth(auth); err != nil {
			log.Error("smtp auth failed", sl.Err(err))
			return fail(err)
		}
	}

	return &clientWrapper{client: client}, nil
}
