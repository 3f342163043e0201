package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"dive-booking/config"
	"dive-booking/models"
	"dive-booking/pricing"
)

const bookingEmailBoundary = "----=_BOOKING_EMAIL_BOUNDARY"

func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(strings.TrimSpace(s))
}

func bookingDates(b *models.Booking) string {
	var parts []string
	if b.ResortArrivalDate != nil && b.ResortDepartureDate != nil {
		parts = append(parts, fmt.Sprintf("Resort: %s to %s", b.ResortArrivalDate, b.ResortDepartureDate))
	}
	if b.PelagianArrivalDate != nil && b.PelagianDepartureDate != nil {
		parts = append(parts, fmt.Sprintf("Pelagian: %s to %s", b.PelagianArrivalDate, b.PelagianDepartureDate))
	}
	return strings.Join(parts, "\n")
}

// BuildBookingEmail renders the acknowledgement sent when a booking request is received.
func BuildBookingEmail(from string, to []string, b *models.Booking) []byte {
	name := headerSafe(b.FirstName)
	total := pricing.Amount(b.TotalPrice).String()
	subject := fmt.Sprintf("Booking request #%d received", b.ID)

	plainBody := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Thank you for your booking request #%d.\n"+
			"%s\n"+
			"Guests: %d adults, %d children, %d infants\n"+
			"Quoted total: USD %s\n\n"+
			"Our reservations team will contact you shortly to confirm availability.\n",
		name, b.ID, bookingDates(b), b.Adults, b.Children, b.Infants, total,
	)

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Booking request</title>
<style>
body { background:#f2f8fb; font-family:Arial, Helvetica, sans-serif; color:#1d2b36; }
.container { max-width:640px; margin:20px auto; }
.card { background:#fff; border:1px solid #dbe9f1; padding:24px; border-radius:8px; }
.total { font-size:20px; font-weight:bold; margin-top:12px; }
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h2>Booking request #%d received</h2>
    <p>Hi %s,</p>
    <p style="white-space:pre-line">%s</p>
    <p>Guests: %d adults, %d children, %d infants</p>
    <p class="total">Quoted total: USD %s</p>
    <p>Our reservations team will contact you shortly to confirm availability.</p>
  </div>
</div>
</body>
</html>`,
		b.ID, name, bookingDates(b), b.Adults, b.Children, b.Infants, total,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ", ")))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", bookingEmailBoundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", bookingEmailBoundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", bookingEmailBoundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", bookingEmailBoundary))
	return []byte(sb.String())
}

// SendBookingEmail mails the guest, and the reservations desk when NOTIFY_EMAIL
// is set. Without SMTP settings it only logs a mock send.
func SendBookingEmail(cfg config.Config, b *models.Booking) error {
	recipient := headerSafe(b.Email)
	to := []string{recipient}
	if desk := headerSafe(cfg.NotifyEmail); desk != "" {
		to = append(to, desk)
	}

	if !cfg.SMTPConfigured() {
		GetLogger().Info("[MOCK EMAIL] booking request",
			zap.Uint("bookingId", b.ID), zap.Strings("to", to), zap.Int64("totalPrice", b.TotalPrice))
		return nil
	}

	from := fmt.Sprintf("%s <%s>", headerSafe(cfg.SMTPFromName), cfg.SMTPUsername)
	auth := smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	addr := fmt.Sprintf("%s:%s", cfg.SMTPHost, cfg.SMTPPort)

	if err := smtp.SendMail(addr, auth, cfg.SMTPUsername, to, BuildBookingEmail(from, to, b)); err != nil {
		GetLogger().Error("Failed to send booking email", zap.Uint("bookingId", b.ID), zap.Error(err))
		return err
	}

	GetLogger().Info("Booking email sent", zap.Uint("bookingId", b.ID), zap.String("to", recipient))
	return nil
}
