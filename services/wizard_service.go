package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dive-booking/booking"
	"dive-booking/models"
	"dive-booking/pricing"
	"dive-booking/wizard"
)

// WizardService drives server-held wizard sessions.
type WizardService struct {
	Sessions wizard.SessionStore
	Bookings *BookingService
	Now      func() time.Time
}

func NewWizardService(sessions wizard.SessionStore, bookings *BookingService) *WizardService {
	return &WizardService{Sessions: sessions, Bookings: bookings, Now: time.Now}
}

func (s *WizardService) Start(ctx context.Context) (*wizard.Session, error) {
	sess := wizard.NewSession(uuid.NewString(), s.Now())
	if err := s.Sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *WizardService) Get(ctx context.Context, id string) (*wizard.Session, error) {
	return s.Sessions.Get(ctx, id)
}

func (s *WizardService) UpdateDraft(ctx context.Context, id string, d booking.Draft) (*wizard.Session, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Update(d, s.Now())
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Next returns the session together with the gate errors, if any. The session
// is saved either way since leaving the activities step may fill a default
// allocation.
func (s *WizardService) Next(ctx context.Context, id string) (*wizard.Session, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	gateErr := sess.Next(s.Bookings.Catalog, s.Bookings.Rules, s.Now())
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, gateErr
}

func (s *WizardService) Back(ctx context.Context, id string) (*wizard.Session, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.Back(s.Now())
	if err := s.Sessions.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *WizardService) Quote(ctx context.Context, id string) (pricing.Quote, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return pricing.Quote{}, err
	}
	return s.Bookings.Quote(sess.Draft)
}

// Submit books the session's draft and ends the session. A failed submission
// keeps the session so the guest can correct and retry.
func (s *WizardService) Submit(ctx context.Context, id string) (*models.Booking, pricing.Quote, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, pricing.Quote{}, err
	}
	rec, q, err := s.Bookings.Submit(ctx, sess.Draft)
	if err != nil {
		return nil, pricing.Quote{}, err
	}
	if err := s.Sessions.Delete(ctx, id); err != nil && !errors.Is(err, wizard.ErrSessionNotFound) {
		s.Bookings.Logger.Warn("wizard session not cleared after submit", zap.String("sessionId", id), zap.Error(err))
	}
	return rec, q, nil
}
