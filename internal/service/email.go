package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/i18n"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/logger"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/mail"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/models"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/notifier"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/payload"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/pricing"
	"golang.org/x/sync/errgroup"
)

// EmailStore is everything the email actions read and write.
type EmailStore interface {
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	GetQuote(ctx context.Context, id uint) (*models.Quote, error)
	GetCar(ctx context.Context, id uint) (*models.Car, error)
	UpdateBookingStatus(ctx context.Context, id uint, status models.BookingStatus, finalizedAt *time.Time) error
	UpdateQuoteStatus(ctx context.Context, id uint, status models.QuoteStatus) error
	SaveBookingRequest(ctx context.Context, id uint, raw []byte, status models.QuoteStatus) error
}

type EmailOptions struct {
	Logo          mail.Logo
	SiteBaseURL   string
	DefaultLocale string
	Notifier      notifier.Notifier
	// Now defaults to time.Now in UTC.
	Now func() time.Time
}

type EmailService struct {
	store     EmailStore
	transport mail.Transport
	opts      EmailOptions
}

func NewEmailService(st EmailStore, transport mail.Transport, opts EmailOptions) *EmailService {
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	if opts.Notifier == nil {
		opts.Notifier = notifier.Nop{}
	}
	if opts.DefaultLocale == "" {
		opts.DefaultLocale = i18n.DefaultLocale
	}
	if transport == nil {
		transport = mail.Disabled{}
	}
	return &EmailService{store: st, transport: transport, opts: opts}
}

// Preview is a rendered email that has not been sent.
type Preview struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

func previewOf(msg mail.Message) *Preview {
	return &Preview{To: msg.To, Subject: msg.Subject, Text: msg.Text, HTML: msg.HTML}
}

// BookingRequestInput is what the admin fills in when sending an offer.
type BookingRequestInput struct {
	pricing.Fees
	DeliveryLocation string `json:"deliveryLocation,omitempty" maxLength:"500"`
	Note             string `json:"note,omitempty" maxLength:"2000"`
	Locale           string `json:"locale,omitempty"`
	// CarID overrides the car the quote was made for.
	CarID *uint `json:"carId,omitempty"`
}

type bookingRequestDraft struct {
	quote  *models.Quote
	locale string
	msg    mail.Message
}

func (s *EmailService) draftBookingRequest(ctx context.Context, action string, quoteID uint, in BookingRequestInput) (*bookingRequestDraft, error) {
	var (
		quote *models.Quote
		car   *models.Car
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := s.store.GetQuote(gctx, quoteID)
		if err != nil {
			return lookup(gctx, action, err, MsgQuoteNotFound)
		}
		quote = q
		return nil
	})
	if in.CarID != nil {
		g.Go(func() error {
			c, err := s.store.GetCar(gctx, *in.CarID)
			if err != nil {
				return lookup(gctx, action, err, MsgCarNotFound)
			}
			car = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if in.CarID == nil && quote.CarID != nil {
		c, err := s.optionalCar(ctx, action, *quote.CarID)
		if err != nil {
			return nil, err
		}
		car = c
	}

	to := strings.TrimSpace(quote.Email)
	if validate.Var(to, "required,email") != nil {
		return nil, fail(ErrValidation, MsgInvalidRecipient)
	}

	locale := i18n.NormalizeLocaleOr(firstNonEmpty(in.Locale, quote.Locale), s.opts.DefaultLocale)
	content := mail.Content{
		Kind:             mail.KindBookingRequest,
		Copy:             i18n.For(locale),
		RecipientName:    quote.Name,
		Code:             quote.Code,
		CarLabel:         quote.CarLabel,
		Fees:             pricing.Compute(in.Fees, false),
		DeliveryLocation: in.DeliveryLocation,
		Note:             in.Note,
		ActionURL:        s.bookingURL(locale, quote.Code),
		LogoSrc:          s.opts.Logo.Src(),
	}
	if car != nil {
		content.CarLabel = car.Label()
	}
	if quote.RentalStart != nil {
		content.Start = *quote.RentalStart
	}
	if quote.RentalEnd != nil {
		content.End = *quote.RentalEnd
	}

	msg, err := mail.Compose(content, to)
	if err != nil {
		return nil, unexpected(ctx, action, err)
	}
	return &bookingRequestDraft{quote: quote, locale: locale, msg: msg}, nil
}

func (s *EmailService) PreviewBookingRequest(ctx context.Context, quoteID uint, in BookingRequestInput) (*Preview, error) {
	d, err := s.draftBookingRequest(ctx, "preview-booking-request", quoteID, in)
	if err != nil {
		return nil, err
	}
	return previewOf(d.msg), nil
}

// SendBookingRequest emails the offer, then stores what was sent and marks
// the quote sent.
func (s *EmailService) SendBookingRequest(ctx context.Context, quoteID uint, in BookingRequestInput) (*Result, error) {
	const action = "send-booking-request"
	d, err := s.draftBookingRequest(ctx, action, quoteID, in)
	if err != nil {
		return nil, err
	}
	if err := s.send(ctx, action, d.msg); err != nil {
		return nil, err
	}

	res := &Result{Message: MsgBookingRequestSent, Revalidate: quotePaths(quoteID)}

	sentAt := s.opts.Now()
	raw, err := payload.Encode(payload.BookingRequest{
		Fees:             in.Fees.Normalized(),
		DeliveryLocation: strings.TrimSpace(in.DeliveryLocation),
		Note:             strings.TrimSpace(in.Note),
		Locale:           d.locale,
		SentAt:           &sentAt,
	})
	if err != nil {
		logger.ActionFailed(ctx, action, err, "quote_id", quoteID)
		res.Warning = MsgEmailSentStatusNotUpdated
		return res, nil
	}

	status, _ := models.NormalizeQuoteStatus(string(d.quote.Status))
	if status.CanMoveTo(models.QuoteSent) {
		status = models.QuoteSent
	}
	if err := s.store.SaveBookingRequest(ctx, quoteID, raw, status); err != nil {
		logger.ActionFailed(ctx, action, err, "quote_id", quoteID)
		res.Warning = MsgEmailSentStatusNotUpdated
	}
	return res, nil
}

type finalizationDraft struct {
	booking *models.Booking
	quote   *models.Quote
	msg     mail.Message
}

func (s *EmailService) draftFinalization(ctx context.Context, action string, bookingID uint) (*finalizationDraft, error) {
	booking, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, lookup(ctx, action, err, MsgBookingNotFound)
	}
	p, err := payload.DecodeBooking(booking.Payload)
	if err != nil {
		logger.WarnContext(ctx, "booking payload quarantined", "booking_id", bookingID, "error", err)
		return nil, fail(ErrInvalidPayload, MsgInvalidPayload)
	}

	var (
		car   *models.Car
		quote *models.Quote
	)
	g, gctx := errgroup.WithContext(ctx)
	if booking.CarID != nil {
		g.Go(func() error {
			c, err := s.optionalCar(gctx, action, *booking.CarID)
			car = c
			return err
		})
	}
	if booking.QuoteID != nil {
		g.Go(func() error {
			q, err := s.store.GetQuote(gctx, *booking.QuoteID)
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			if err != nil {
				return unexpected(gctx, action, err)
			}
			quote = q
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot := &payload.BookingRequest{}
	if quote != nil {
		if r, err := payload.DecodeBookingRequest(quote.BookingRequestData); err == nil {
			snapshot = r
		} else {
			logger.WarnContext(ctx, "booking request snapshot ignored", "quote_id", quote.ID, "error", err)
		}
	}

	to := strings.TrimSpace(firstNonEmpty(booking.ContactEmail, p.Driver.Email))
	if validate.Var(to, "required,email") != nil {
		return nil, fail(ErrValidation, MsgInvalidRecipient)
	}

	locale := i18n.NormalizeLocaleOr(booking.Locale, s.opts.DefaultLocale)
	content := mail.Content{
		Kind:             mail.KindFinalization,
		Copy:             i18n.For(locale),
		RecipientName:    firstNonEmpty(booking.ContactName, p.Driver.Name),
		Code:             booking.Code,
		Start:            booking.RentalStart,
		End:              booking.RentalEnd,
		Fees:             pricing.Compute(snapshot.Fees.Merge(p.Pricing), p.Consents.InsuranceAccepted()),
		DeliveryLocation: firstNonEmpty(p.Delivery.Location(), snapshot.DeliveryLocation),
		Note:             p.Note,
		LogoSrc:          s.opts.Logo.Src(),
	}
	switch {
	case car != nil:
		content.CarLabel = car.Label()
	case quote != nil:
		content.CarLabel = quote.CarLabel
	}

	msg, err := mail.Compose(content, to)
	if err != nil {
		return nil, unexpected(ctx, action, err)
	}
	return &finalizationDraft{booking: booking, quote: quote, msg: msg}, nil
}

func (s *EmailService) PreviewFinalization(ctx context.Context, bookingID uint) (*Preview, error) {
	d, err := s.draftFinalization(ctx, "preview-finalization", bookingID)
	if err != nil {
		return nil, err
	}
	return previewOf(d.msg), nil
}

// SendFinalization emails the confirmation first and only then updates the
// booking and its quote. A failed status write after a successful send is
// reported as a warning, never as a failure.
func (s *EmailService) SendFinalization(ctx context.Context, bookingID uint) (*Result, error) {
	const action = "send-finalization"
	d, err := s.draftFinalization(ctx, action, bookingID)
	if err != nil {
		return nil, err
	}
	if d.booking.Status == models.BookingCancelled {
		return nil, fail(ErrValidation, MsgBookingCancelled)
	}
	if err := s.send(ctx, action, d.msg); err != nil {
		return nil, err
	}

	res := &Result{Message: MsgFinalizationSent, Revalidate: bookingPaths(bookingID)}

	status := models.BookingAccepted
	if d.booking.Status == models.BookingRegistered {
		status = models.BookingRegistered
	}
	finalizedAt := s.opts.Now()
	statusErr := s.store.UpdateBookingStatus(ctx, bookingID, status, &finalizedAt)
	if statusErr == nil && d.quote != nil {
		from, _ := models.NormalizeQuoteStatus(string(d.quote.Status))
		if from != models.QuoteAccepted && from.CanMoveTo(models.QuoteAccepted) {
			statusErr = s.store.UpdateQuoteStatus(ctx, d.quote.ID, models.QuoteAccepted)
			if statusErr == nil {
				res.Revalidate = append(res.Revalidate, quotePaths(d.quote.ID)[0])
			}
		}
	}
	if statusErr != nil {
		logger.ActionFailed(ctx, action, statusErr, "booking_id", bookingID)
		res.Warning = MsgEmailSentStatusNotUpdated
	}

	booking := *d.booking
	booking.FinalizedAt = &finalizedAt
	if err := s.opts.Notifier.NotifyFinalized(booking); err != nil {
		logger.WarnContext(ctx, "finalization notification failed", "booking_id", bookingID, "error", err)
	}
	return res, nil
}

func (s *EmailService) send(ctx context.Context, action string, msg mail.Message) error {
	err := s.transport.Send(ctx, msg)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mail.ErrNotConfigured):
		return fail(ErrMailNotConfigured, MsgMailNotConfigured)
	}
	return unexpected(ctx, action, err)
}

// optionalCar treats a missing stored car as absent; the label then falls
// back to whatever the quote recorded.
func (s *EmailService) optionalCar(ctx context.Context, action string, id uint) (*models.Car, error) {
	car, err := s.store.GetCar(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, unexpected(ctx, action, err)
	}
	return car, nil
}

func (s *EmailService) bookingURL(locale, code string) string {
	base := strings.TrimRight(strings.TrimSpace(s.opts.SiteBaseURL), "/")
	if base == "" || code == "" {
		return ""
	}
	return base + "/" + locale + "/booking/" + url.PathEscape(code)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
