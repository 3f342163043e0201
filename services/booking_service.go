package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"dive-booking/booking"
	"dive-booking/catalog"
	"dive-booking/models"
	"dive-booking/pricing"
	"dive-booking/schedule"
	"dive-booking/validation"
)

// ErrSubmissionFailed wraps every storage failure during Submit. The caller's
// draft is left untouched so the request can be retried.
var ErrSubmissionFailed = errors.New("booking submission failed")

// BookingService validates, prices and stores booking requests.
type BookingService struct {
	Store    BookingStore
	Catalog  catalog.Lookup
	Pricing  *pricing.Engine
	Rules    schedule.Rules
	Notifier Notifier
	Logger   *zap.Logger
}

func NewBookingService(store BookingStore, cat *catalog.Catalog, rules schedule.Rules, notifier Notifier, logger *zap.Logger) *BookingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingService{
		Store:    store,
		Catalog:  cat,
		Pricing:  pricing.NewEngine(cat),
		Rules:    rules,
		Notifier: notifier,
		Logger:   logger,
	}
}

// Quote prices a draft without storing it. Only the fields pricing needs are
// checked: the party, the activity allocation and stale catalog ids. A resort
// trip with a package but no allocation is quoted with the default allocation,
// as Submit would store it.
func (s *BookingService) Quote(d booking.Draft) (pricing.Quote, error) {
	d = d.Clone()
	d.Normalize()
	d.FillDefaultAllocation()

	errs := booking.ValidateGuests(d)
	if d.TripType.HasResortLeg() {
		errs.Merge("", booking.ValidateActivities(d, s.Catalog))
	}
	if !errs.Empty() {
		return pricing.Quote{}, errs
	}

	cfg, err := d.Configuration()
	if err != nil {
		return pricing.Quote{}, err
	}
	q, err := s.Pricing.Price(cfg)
	if err != nil {
		var perr *pricing.Error
		if errors.As(err, &perr) {
			var errs validation.FieldErrors
			errs.Add(perr.Field, quoteMessage(perr))
			return pricing.Quote{}, errs
		}
		return pricing.Quote{}, err
	}
	return q, nil
}

func quoteMessage(perr *pricing.Error) string {
	switch {
	case errors.Is(perr, pricing.ErrInvalidLeg):
		return "departure must be after arrival"
	case perr.ID != "":
		return fmt.Sprintf("%q is not available", perr.ID)
	}
	return perr.Err.Error()
}

// Submit validates the whole draft, prices it and stores the booking. A
// package chosen without an allocation books every guest for the maximum
// days, the same default the wizard applies on its activities step. The
// returned error is validation.FieldErrors for user mistakes, a *pricing.Error
// when validation let an unpriceable draft through, or wraps
// ErrSubmissionFailed when the store fails.
func (s *BookingService) Submit(ctx context.Context, d booking.Draft) (*models.Booking, pricing.Quote, error) {
	d = d.Clone()
	d.Normalize()
	d.FillDefaultAllocation()

	if errs := booking.Validate(d, s.Catalog, s.Rules); !errs.Empty() {
		return nil, pricing.Quote{}, errs
	}

	cfg, err := d.Configuration()
	if err != nil {
		return nil, pricing.Quote{}, err
	}

	q, err := s.Pricing.Price(cfg)
	if err != nil {
		s.Logger.Error("pricing rejected a validated booking",
			zap.String("kind", "invariant"),
			zap.String("tripType", string(d.TripType)),
			zap.Error(err))
		return nil, pricing.Quote{}, fmt.Errorf("price booking: %w", err)
	}

	rec, err := models.NewBooking(cfg, q)
	if err != nil {
		return nil, pricing.Quote{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}
	if err := s.Store.Create(ctx, rec); err != nil {
		s.Logger.Error("store booking", zap.String("email", d.Email), zap.Error(err))
		return nil, pricing.Quote{}, fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	s.Logger.Info("booking received",
		zap.Uint("bookingId", rec.ID),
		zap.String("tripType", rec.TripType),
		zap.Int64("totalPrice", rec.TotalPrice))

	if s.Notifier != nil {
		if err := s.Notifier.BookingReceived(ctx, rec.Clone()); err != nil {
			s.Logger.Warn("booking acknowledgement not sent", zap.Uint("bookingId", rec.ID), zap.Error(err))
		}
	}
	return rec, q, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	return s.Store.GetByID(ctx, id)
}

func (s *BookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Store.List(ctx)
}
