package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		countryCode string
		expected    string
	}{
		{
			name:        "leading zero rewritten to country code",
			phone:       "0712345678",
			countryCode: "254",
			expected:    "254712345678",
		},
		{
			name:        "plus prefix stripped",
			phone:       "+254712345678",
			countryCode: "254",
			expected:    "254712345678",
		},
		{
			name:        "already in international format",
			phone:       "254712345678",
			countryCode: "254",
			expected:    "254712345678",
		},
		{
			name:        "bare national number gets country code",
			phone:       "712345678",
			countryCode: "254",
			expected:    "254712345678",
		},
		{
			name:        "separators stripped",
			phone:       "+254 (712) 345-678",
			countryCode: "254",
			expected:    "254712345678",
		},
		{
			name:        "leading zero with separators",
			phone:       "07 1234 5678",
			countryCode: "254",
			expected:    "254712345678",
		},
		{
			name:        "different country code",
			phone:       "01234567",
			countryCode: "49",
			expected:    "491234567",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhone(tt.phone, tt.countryCode))
		})
	}
}

func TestBookingLink(t *testing.T) {
	linker := NewWhatsAppLinker("0712345678", "254")

	link := linker.BookingLink(BookingDetails{
		Name:        "Jane Doe",
		SessionType: "Portrait Session",
		Date:        "2025-07-01",
		Time:        "09:00",
	})

	assert.True(t, strings.HasPrefix(link, "https://wa.me/254712345678?text="), link)
	assert.Contains(t, link, "Jane%20Doe")
	assert.Contains(t, link, "Portrait%20Session")
	assert.Contains(t, link, "2025-07-01")
	// wa.me renders "+" literally, so spaces must be %20-encoded.
	assert.NotContains(t, link, "+")
}

func TestContactLink_TargetsCustomerNumber(t *testing.T) {
	linker := NewWhatsAppLinker("0712345678", "254")

	link := linker.ContactLink(BookingDetails{
		Name:        "John",
		Phone:       "0722000111",
		SessionType: "Wedding Package A",
		Date:        "2025-08-09",
		Time:        "13:00",
	})

	assert.True(t, strings.HasPrefix(link, "https://wa.me/254722000111?text="), link)
	assert.Contains(t, link, "John")
}
