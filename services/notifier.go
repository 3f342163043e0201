package services

import (
	"context"

	"dive-booking/config"
	"dive-booking/models"
	"dive-booking/utils"
)

// Notifier tells the guest their booking request arrived.
type Notifier interface {
	BookingReceived(ctx context.Context, b *models.Booking) error
}

// MailNotifier sends the acknowledgement over SMTP.
type MailNotifier struct {
	Config config.Config
}

func NewMailNotifier(cfg config.Config) *MailNotifier {
	return &MailNotifier{Config: cfg}
}

func (n *MailNotifier) BookingReceived(_ context.Context, b *models.Booking) error {
	return utils.SendBookingEmail(n.Config, b)
}
