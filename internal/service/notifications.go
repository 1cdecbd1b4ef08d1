package service

import (
	"context"
	"strings"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/logger"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/notifier"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/store"
)

const promotionBatch = 100

type NotificationStore interface {
	ListNotifications(ctx context.Context, f store.NotificationFilter) ([]models.Notification, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkNotificationRead(ctx context.Context, id uint) (bool, error)
	MarkAllNotificationsRead(ctx context.Context) (int64, error)
	PromotionCandidates(ctx context.Context, cutoff time.Time, limit int) ([]models.Notification, error)
	Promote(ctx context.Context, sourceID uint, derived *models.Notification) (bool, error)
}

type NotificationService struct {
	store    NotificationStore
	notifier notifier.Notifier
	lead     time.Duration
	now      func() time.Time
}

func NewNotificationService(st NotificationStore, n notifier.Notifier, lead time.Duration) *NotificationService {
	if n == nil {
		n = notifier.Nop{}
	}
	return &NotificationService{store: st, notifier: n, lead: lead, now: time.Now}
}

func (s *NotificationService) List(ctx context.Context, f store.NotificationFilter) ([]store.NotificationView, error) {
	rows, err := s.store.ListNotifications(ctx, f)
	if err != nil {
		return nil, unexpected(ctx, "list-notifications", err)
	}
	views := make([]store.NotificationView, 0, len(rows))
	for _, n := range rows {
		views = append(views, store.NewNotificationView(n))
	}
	return views, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context) (int64, error) {
	count, err := s.store.CountUnread(ctx)
	if err != nil {
		return 0, unexpected(ctx, "count-unread-notifications", err)
	}
	return count, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id uint) (*Result, error) {
	changed, err := s.store.MarkNotificationRead(ctx, id)
	if err != nil {
		return nil, lookup(ctx, "mark-notification-read", err, MsgNotificationNotFound)
	}
	res := &Result{Message: MsgNotificationRead}
	if changed {
		res.Revalidate = []string{"/notifications"}
	}
	return res, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context) (*Result, error) {
	if _, err := s.store.MarkAllNotificationsRead(ctx); err != nil {
		return nil, unexpected(ctx, "mark-all-notifications-read", err)
	}
	return &Result{Message: MsgAllRead, Revalidate: []string{"/notifications"}}, nil
}

// PromotionReport counts the outcome of one promotion scan.
type PromotionReport struct {
	Promoted int `json:"promoted"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// Promote turns pending rent request reminders that are due within the lead
// window into visible rent update notifications. Each reminder is promoted at
// most once, however many scans run concurrently.
func (s *NotificationService) Promote(ctx context.Context) (PromotionReport, error) {
	var report PromotionReport

	cutoff := s.now().Add(s.lead)
	candidates, err := s.store.PromotionCandidates(ctx, cutoff, promotionBatch)
	if err != nil {
		return report, unexpected(ctx, "promote-notifications", err)
	}

	for _, src := range candidates {
		derived := PromotedFrom(src)
		ok, err := s.store.Promote(ctx, src.ID, derived)
		switch {
		case err != nil:
			report.Failed++
			logger.ActionFailed(ctx, "promote-notifications", err, "notification_id", src.ID)
			continue
		case !ok:
			report.Skipped++
			continue
		}
		report.Promoted++
		if err := s.notifier.NotifyReminder(*derived); err != nil {
			logger.WarnContext(ctx, "reminder notification failed", "event_key", derived.EventKey, "error", err)
		}
	}

	if len(candidates) > 0 {
		logger.InfoContext(ctx, "notification promotion finished",
			"candidates", len(candidates),
			"promoted", report.Promoted,
			"skipped", report.Skipped,
			"failed", report.Failed,
		)
	}
	return report, nil
}

// PromotedFrom builds the visible notification for a due reminder. The event
// key's trailing ":0" becomes ":1" and the link points at the reminder's
// top-level section.
func PromotedFrom(src models.Notification) *models.Notification {
	return &models.Notification{
		EventKey:    strings.TrimSuffix(src.EventKey, ":0") + ":1",
		Type:        models.NotificationRentUpdate,
		Title:       src.Title,
		Description: src.Description,
		Href:        sectionHref(src.Href),
		Tone:        models.ToneWarning,
		State:       models.NotificationActive,
		NotifyAt:    src.NotifyAt,
	}
}

func sectionHref(href string) string {
	if !strings.HasPrefix(href, "/") {
		return "/"
	}
	segments := strings.Split(href, "/")
	if segments[1] == "" {
		return "/"
	}
	return "/" + segments[1]
}
