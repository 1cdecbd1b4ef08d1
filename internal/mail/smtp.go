package mail

import (
	"context"
	"fmt"
	"sync"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/logger"
	"gopkg.in/gomail.v2"
)

// Dialer opens an SMTP session. *gomail.Dialer satisfies it.
type Dialer interface {
	Dial() (gomail.SendCloser, error)
}

// SMTPTransport keeps one authenticated SMTP session open for the life of
// the process and redials once when the server has dropped it.
type SMTPTransport struct {
	dialer Dialer
	from   string

	mu   sync.Mutex
	conn gomail.SendCloser
}

func NewSMTPTransport(host string, port int, user, password, from string) *SMTPTransport {
	return NewSMTPTransportWithDialer(gomail.NewDialer(host, port, user, password), from)
}

func NewSMTPTransportWithDialer(d Dialer, from string) *SMTPTransport {
	return &SMTPTransport{dialer: d, from: from}
}

// Open dials eagerly so bad credentials surface at startup.
func (t *SMTPTransport) Open() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dialLocked()
}

func (t *SMTPTransport) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m := t.build(msg)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn == nil {
		if err := t.dialLocked(); err != nil {
			return err
		}
	}
	err := gomail.Send(t.conn, m)
	if err == nil {
		return nil
	}

	logger.WarnContext(ctx, "smtp send failed, redialing", "to", msg.To, "error", err)
	t.resetLocked()
	if err := t.dialLocked(); err != nil {
		return err
	}
	if err := gomail.Send(t.conn, m); err != nil {
		t.resetLocked()
		return fmt.Errorf("sending mail to %s: %w", msg.To, err)
	}
	return nil
}

func (t *SMTPTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}

func (t *SMTPTransport) dialLocked() error {
	if t.conn != nil {
		return nil
	}
	conn, err := t.dialer.Dial()
	if err != nil {
		return fmt.Errorf("dialing smtp: %w", err)
	}
	t.conn = conn
	return nil
}

func (t *SMTPTransport) resetLocked() {
	if t.conn != nil {
		_ = t.conn.Close()
		t.conn = nil
	}
}

func (t *SMTPTransport) build(msg Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", t.from)
	if msg.ToName != "" {
		m.SetAddressHeader("To", msg.To, msg.ToName)
	} else {
		m.SetHeader("To", msg.To)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}
	return m
}
