// Package smtp dials the outgoing mail server for the verification mailer.
package smtp

import (
	"context"
	"io"
)

// Client is the part of *smtp.Client a mail sender drives.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// Dialer opens an authenticated session with the mail server.
type Dialer interface {
	Connect(ctx context.Context) (Client, error)
}
