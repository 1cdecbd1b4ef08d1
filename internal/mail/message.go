package mail

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned by transports that cannot deliver because
// mail credentials are missing.
var ErrNotConfigured = errors.New("mail transport not configured")

type Message struct {
	To      string `json:"to"`
	ToName  string `json:"toName,omitempty"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// Compose renders both bodies of c for one recipient.
func Compose(c Content, to string) (Message, error) {
	html, err := RenderHTML(c)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      to,
		ToName:  c.RecipientName,
		Subject: c.Subject(),
		Text:    RenderText(c),
		HTML:    html,
	}, nil
}

// Transport delivers composed messages. Implementations are created at
// startup and closed at shutdown.
type Transport interface {
	Send(ctx context.Context, msg Message) error
	Close() error
}

// Disabled rejects every message.
type Disabled struct{}

func (Disabled) Send(context.Context, Message) error { return ErrNotConfigured }
func (Disabled) Close() error                        { return nil }
