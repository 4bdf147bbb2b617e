package notify

import (
	"fmt"
	"net/url"
	"strings"
)

// BookingDetails carries the fields the notification channels need. Dates
// arrive as YYYY-MM-DD and are reformatted long-form for human-facing text.
type BookingDetails struct {
	Name         string
	Email        string
	Phone        string
	SessionType  string
	Date         string
	Time         string
	Notes        string
	WhatsAppLink string
}

// WhatsAppLinker builds wa.me deep links with a pre-filled message.
type WhatsAppLinker struct {
	businessNumber string
	countryCode    string
}

// NewWhatsAppLinker creates a linker for the studio's business number and
// default country code.
func NewWhatsAppLinker(businessNumber, countryCode string) *WhatsAppLinker {
	return &WhatsAppLinker{
		businessNumber: businessNumber,
		countryCode:    countryCode,
	}
}

// NormalizePhone rewrites a phone number to the bare international digit
// string wa.me expects: separators stripped, a leading "0" replaced with
// the country code, a bare national number prefixed with it, and any "+"
// dropped.
func NormalizePhone(phone, countryCode string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' || r == '+' {
			b.WriteRune(r)
		}
	}
	p := b.String()

	p = strings.TrimPrefix(p, "+")
	switch {
	case strings.HasPrefix(p, "0"):
		p = countryCode + p[1:]
	case !strings.HasPrefix(p, countryCode):
		p = countryCode + p
	}
	return p
}

// BookingLink returns the customer-facing confirmation link. It targets the
// studio's business number so one click opens a chat with the composed
// confirmation text.
func (l *WhatsAppLinker) BookingLink(d BookingDetails) string {
	msg := fmt.Sprintf(
		"Hello! I'm %s. I just booked a %s session on %s at %s and would like to confirm the details.",
		d.Name, d.SessionType, d.Date, d.Time,
	)
	return buildLink(NormalizePhone(l.businessNumber, l.countryCode), msg)
}

// ContactLink returns the admin dashboard shortcut for reaching a customer
// about their booking. It targets the customer's own number.
func (l *WhatsAppLinker) ContactLink(d BookingDetails) string {
	msg := fmt.Sprintf(
		"Hi %s, this is Jr Photography regarding your %s session on %s at %s.",
		d.Name, d.SessionType, d.Date, d.Time,
	)
	return buildLink(NormalizePhone(d.Phone, l.countryCode), msg)
}

func buildLink(number, message string) string {
	// wa.me decodes %20 but renders "+" literally, so QueryEscape alone
	// is not enough.
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + encoded
}
