package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reminder(key, href string, notifyAt time.Time) *models.Notification {
	return &models.Notification{
		EventKey: key,
		Type:     models.NotificationRentRequest,
		Title:    "Rental starts soon",
		Href:     href,
		State:    models.NotificationPending,
		NotifyAt: &notifyAt,
	}
}

func TestPromote(t *testing.T) {
	ctx := context.Background()
	s, db := newTestStore(t)
	now := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	for _, n := range []*models.Notification{
		reminder("booking:rent_request:1:100:0", "/bookings/1", now.Add(time.Hour)),
		reminder("booking:rent_request:2:100:0", "/bookings/2/edit", now.Add(47*time.Hour)),
		reminder("booking:rent_request:3:100:0", "/bookings/3", now.Add(72*time.Hour)),
	} {
		_, err := s.CreateNotification(ctx, n)
		require.NoError(t, err)
	}

	rec := &recordingNotifier{}
	svc := NewNotificationService(s, rec, 48*time.Hour)
	svc.now = func() time.Time { return now }

	report, err := svc.Promote(ctx)
	require.NoError(t, err)
	assert.Equal(t, PromotionReport{Promoted: 2}, report)

	require.Len(t, rec.reminders, 2)
	assert.Equal(t, "booking:rent_request:1:100:1", rec.reminders[0].EventKey)
	assert.Equal(t, "/bookings", rec.reminders[0].Href)
	assert.Equal(t, models.ToneWarning, rec.reminders[0].Tone)

	report, err = svc.Promote(ctx)
	require.NoError(t, err)
	assert.Equal(t, PromotionReport{}, report)

	var visible []models.Notification
	require.NoError(t, db.Where("type = ?", models.NotificationRentUpdate).Order("event_key").Find(&visible).Error)
	require.Len(t, visible, 2)
	for _, n := range visible {
		assert.Equal(t, models.NotificationActive, n.State)
	}

	count, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestPromoteConcurrentScansPromoteOnce(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	now := time.Now()
	for _, key := range []string{"booking:rent_request:1:1:0", "booking:rent_request:2:1:0", "booking:rent_request:3:1:0"} {
		_, err := s.CreateNotification(ctx, reminder(key, "/bookings", now))
		require.NoError(t, err)
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total PromotionReport
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc := NewNotificationService(s, nil, 48*time.Hour)
			report, err := svc.Promote(ctx)
			assert.NoError(t, err)
			mu.Lock()
			total.Promoted += report.Promoted
			total.Failed += report.Failed
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, total.Promoted)
	assert.Zero(t, total.Failed)
}

func TestMarkNotificationsRead(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)
	svc := NewNotificationService(s, nil, time.Hour)

	a := &models.Notification{EventKey: "system:a", Type: models.NotificationSystem, State: models.NotificationActive}
	b := &models.Notification{EventKey: "system:b", Type: models.NotificationSystem, State: models.NotificationActive}
	for _, n := range []*models.Notification{a, b} {
		_, err := s.CreateNotification(ctx, n)
		require.NoError(t, err)
	}

	res, err := svc.MarkRead(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, MsgNotificationRead, res.Message)
	assert.Equal(t, []string{"/notifications"}, res.Revalidate)

	res, err = svc.MarkRead(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, res.Revalidate)

	_, err = svc.MarkRead(ctx, 404)
	requireActionError(t, err, ErrNotFound, MsgNotificationNotFound)

	res, err = svc.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, MsgAllRead, res.Message)

	unread, err := svc.List(ctx, store.NotificationFilter{State: string(models.NotificationActive)})
	require.NoError(t, err)
	assert.Empty(t, unread)

	all, err := svc.List(ctx, store.NotificationFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].Read)
}

func TestPromotedFrom(t *testing.T) {
	notifyAt := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	src := models.Notification{
		EventKey:    "booking:rent_request:9:1751360400:0",
		Title:       "Pickup tomorrow",
		Description: "Toyota Corolla",
		Href:        "/bookings/9",
		NotifyAt:    &notifyAt,
	}
	got := PromotedFrom(src)
	assert.Equal(t, "booking:rent_request:9:1751360400:1", got.EventKey)
	assert.Equal(t, models.NotificationRentUpdate, got.Type)
	assert.Equal(t, models.NotificationActive, got.State)
	assert.Equal(t, "Pickup tomorrow", got.Title)
	assert.Equal(t, "/bookings", got.Href)
	assert.Equal(t, &notifyAt, got.NotifyAt)
}

func TestSectionHref(t *testing.T) {
	tests := map[string]string{
		"":                 "/",
		"/":                "/",
		"/bookings":        "/bookings",
		"/bookings/12":     "/bookings",
		"/cars/3/edit":     "/cars",
		"bookings/12":      "/",
		"https://x.y/cars": "/",
	}
	for in, want := range tests {
		assert.Equal(t, want, sectionHref(in), in)
	}
}
