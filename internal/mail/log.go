package mail

import (
	"context"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/logger"
)

// LogTransport only logs what would have been sent.
type LogTransport struct{}

func (LogTransport) Send(ctx context.Context, msg Message) error {
	logger.InfoContext(ctx, "mail not delivered (log transport)",
		"to", msg.To,
		"subject", msg.Subject,
		"text_bytes", len(msg.Text),
		"html_bytes", len(msg.HTML),
	)
	return nil
}

func (LogTransport) Close() error { return nil }
