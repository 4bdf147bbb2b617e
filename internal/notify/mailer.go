package notify

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// Mailer sends the two booking confirmation emails. Both sends are
// best-effort; callers decide the retry/drop policy.
type Mailer interface {
	SendCustomerConfirmation(d BookingDetails) error
	SendAdminNotification(d BookingDetails) error
}

// SMTPMailer delivers mail over a plain SMTP connection.
type SMTPMailer struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
}

// NewSMTPMailer creates a mailer for the configured SMTP account.
func NewSMTPMailer(host string, port int, user, pass, adminEmail string) *SMTPMailer {
	return &SMTPMailer{
		dialer:     gomail.NewDialer(host, port, user, pass),
		from:       user,
		adminEmail: adminEmail,
	}
}

// SendCustomerConfirmation emails the customer their booking summary and
// the WhatsApp confirmation link.
func (m *SMTPMailer) SendCustomerConfirmation(d BookingDetails) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "Jr Photography Bookings")
	msg.SetHeader("To", d.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Booking Confirmed: %s - %s", d.SessionType, longDate(d.Date)))
	msg.SetBody("text/html", customerEmailBody(d))
	return m.dialer.DialAndSend(msg)
}

// SendAdminNotification emails the studio inbox about a new booking.
func (m *SMTPMailer) SendAdminNotification(d BookingDetails) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "Jr Photography Bookings")
	msg.SetHeader("To", m.adminEmail)
	msg.SetHeader("Subject", fmt.Sprintf("New Booking: %s - %s", d.Name, d.Date))
	msg.SetBody("text/html", adminEmailBody(d))
	return m.dialer.DialAndSend(msg)
}

// longDate renders a YYYY-MM-DD date like "Tuesday, July 1, 2025".
// Unparseable input is passed through unchanged.
func longDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

func customerEmailBody(d BookingDetails) string {
	notes := ""
	if d.Notes != "" {
		notes = fmt.Sprintf(`<p><strong>Your notes:</strong> %s</p>`, d.Notes)
	}
	return fmt.Sprintf(`<html><body style="font-family:Arial,sans-serif;color:#333">
<h2>Thank you for your booking, %s!</h2>
<p>Your <strong>%s</strong> session is confirmed for
<strong>%s</strong> at <strong>%s</strong>.</p>
%s
<p>To confirm over WhatsApp, just tap the link below:</p>
<p><a href="%s">Confirm via WhatsApp</a></p>
<p style="color:#777;font-size:12px">This is an automated confirmation from the Jr Photography booking system.</p>
</body></html>`,
		d.Name, d.SessionType, longDate(d.Date), d.Time, notes, d.WhatsAppLink)
}

func adminEmailBody(d BookingDetails) string {
	notes := ""
	if d.Notes != "" {
		notes = fmt.Sprintf(`<p><strong>Notes:</strong> %s</p>`, d.Notes)
	}
	return fmt.Sprintf(`<html><body style="font-family:Arial,sans-serif;color:#333">
<h2>New booking received</h2>
<p><strong>Name:</strong> %s<br>
<strong>Email:</strong> %s<br>
<strong>Phone:</strong> %s</p>
<p><strong>Package:</strong> %s<br>
<strong>Date:</strong> %s<br>
<strong>Time:</strong> %s</p>
%s
<p>A confirmation email has been sent to %s automatically.</p>
<p style="color:#777;font-size:12px">Received at %s.</p>
</body></html>`,
		d.Name, d.Email, d.Phone, d.SessionType, longDate(d.Date), d.Time,
		notes, d.Email, time.Now().Format("Monday, January 2, 2006 15:04"))
}
