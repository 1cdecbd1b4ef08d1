package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/database"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/mail"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return store.New(db), db
}

// outbox is a mail.Transport that keeps what it was asked to send.
type outbox struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (o *outbox) Send(_ context.Context, msg mail.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.sent = append(o.sent, msg)
	return nil
}

func (o *outbox) Close() error { return nil }

type recordingNotifier struct {
	reminders []models.Notification
	finalized []models.Booking
}

func (r *recordingNotifier) NotifyReminder(n models.Notification) error {
	r.reminders = append(r.reminders, n)
	return nil
}

func (r *recordingNotifier) NotifyFinalized(b models.Booking) error {
	r.finalized = append(r.finalized, b)
	return nil
}

func requireActionError(t *testing.T, err error, kind error, message string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
	var ae *ActionError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, message, ae.Message)
}
