package smtp

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tutor-marketplace/internal/config"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

// fakeServer greets, advertises no extensions and answers QUIT.
func fakeServer(t *testing.T) (host, port string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		r := bufio.NewReader(conn)
		_, _ = conn.Write([]byte("220 localhost ESMTP\r\n"))
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			switch {
			case len(line) >= 4 && (line[:4] == "EHLO" || line[:4] == "HELO"):
				_, _ = conn.Write([]byte("250 localhost\r\n"))
			case len(line) >= 4 && line[:4] == "QUIT":
				_, _ = conn.Write([]byte("221 bye\r\n"))
				return
			default:
				_, _ = conn.Write([]byte("250 ok\r\n"))
			}
		}
	}()

	host, port, err = net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	return host, port
}

func TestConnect_NoHost(t *testing.T) {
	tr := NewTransport(config.SMTP{}, newNoopLogger())
	_, err := tr.Connect(context.Background())
	assert.Error(t, err)
}

func TestConnect_DialFails(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	host, port, _ := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, ln.Close())

	tr := NewTransport(config.SMTP{SMTPHost: host, SMTPPort: port}, newNoopLogger())
	_, err = tr.Connect(context.Background())
	assert.Error(t, err)
}

func TestConnect_RequiresStartTLS(t *testing.T) {
	host, port := fakeServer(t)

	tr := NewTransport(config.SMTP{SMTPHost: host, SMTPPort: port}, newNoopLogger())
	_, err := tr.Connect(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoStartTLS)
}
