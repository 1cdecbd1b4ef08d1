package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePromoter struct {
	calls  int
	report service.PromotionReport
	err    error
	panics bool
}

func (f *fakePromoter) Promote(ctx context.Context) (service.PromotionReport, error) {
	f.calls++
	if f.panics {
		panic("boom")
	}
	if _, ok := ctx.Deadline(); !ok {
		return service.PromotionReport{}, errors.New("job context has no deadline")
	}
	return f.report, f.err
}

func TestRunPromoteNotifications(t *testing.T) {
	p := &fakePromoter{report: service.PromotionReport{Promoted: 2}}
	jr := NewJobRunner(p)

	require.NoError(t, jr.Run(PromoteNotificationsJob))
	jr.PromoteNotifications()
	assert.Equal(t, 2, p.calls)
}

func TestRunReportsFailures(t *testing.T) {
	p := &fakePromoter{err: errors.New("database is locked")}
	err := NewJobRunner(p).Run(PromoteNotificationsJob)
	assert.EqualError(t, err, "database is locked")
}

func TestRunRecoversPanics(t *testing.T) {
	p := &fakePromoter{panics: true}
	jr := NewJobRunner(p)

	err := jr.Run(PromoteNotificationsJob)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")

	assert.NotPanics(t, jr.PromoteNotifications)
}

func TestRunUnknownJob(t *testing.T) {
	err := NewJobRunner(&fakePromoter{}).Run("send-invoices")
	require.Error(t, err)
	assert.Contains(t, err.Error(), PromoteNotificationsJob)
	assert.Equal(t, []string{PromoteNotificationsJob}, Names())
}
