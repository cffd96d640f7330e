// Package notify delivers rendered notifications over external channels.
package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/customtrack-backend/internal/config"
)

// EmailSender sends plain-text mail through an SMTP relay.
type EmailSender struct {
	host   string
	addr   string
	from   string
	auth   smtp.Auth
	dialer net.Dialer
}

// NewEmailSender creates a sender for cfg. Auth is PLAIN when a username is set.
func NewEmailSender(cfg config.SMTPConfig) *EmailSender {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &EmailSender{
		host: cfg.Host,
		addr: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		from: cfg.From,
		auth: auth,
	}
}

// SendEmail sends one message to a single recipient. Cancelling ctx expires
// the connection deadline, which aborts whichever SMTP step is in flight.
func (s *EmailSender) SendEmail(ctx context.Context, to, subject, body string) error {
	if to == "" {
		return fmt.Errorf("email: empty recipient")
	}
	if strings.ContainsAny(to, "\r\n") || strings.ContainsAny(subject, "\r\n") {
		return fmt.Errorf("email: header values must be single-line")
	}

	conn, err := s.dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("email: dial %s: %w", s.addr, err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.SetDeadline(time.Now())
	})
	defer stop()

	if err := s.send(conn, to, buildMessage(s.from, to, subject, body)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("email: send to %s: %w", to, ctxErr)
		}
		return fmt.Errorf("email: send to %s: %w", to, err)
	}
	return nil
}

func (s *EmailSender) send(conn net.Conn, to string, msg []byte) error {
	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return fmt.Errorf("greeting: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if s.auth != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(s.auth); err != nil {
				return fmt.Errorf("auth: %w", err)
			}
		}
	}

	if err := c.Mail(s.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := c.Rcpt(to); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("end data: %w", err)
	}
	return c.Quit()
}

// buildMessage renders the headers and body. Non-ASCII subjects are
// RFC 2047 Q-encoded; ASCII subjects are written as-is.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	writeHeader(&b, "From", from)
	writeHeader(&b, "To", to)
	writeHeader(&b, "Subject", mime.QEncoding.Encode("utf-8", subject))
	writeHeader(&b, "MIME-Version", "1.0")
	writeHeader(&b, "Content-Type", "text/plain; charset=UTF-8")
	writeHeader(&b, "Content-Transfer-Encoding", "8bit")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}

func writeHeader(w io.StringWriter, key, value string) {
	_, _ = w.WriteString(key + ": " + value + "\r\n")
}
