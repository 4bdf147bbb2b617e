package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking represents one reserved photography session.
//
// Date is stored and compared as a plain YYYY-MM-DD string; the business
// works in a single timezone and the calendar only cares about whole days.
// The composite unique index on (date, time) is the double-booking guard:
// the insert either commits the slot or fails, there is no read-then-write
// window.
type Booking struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Email       string    `json:"email" gorm:"size:255;not null"`
	Phone       string    `json:"phone" gorm:"size:32;not null"`
	SessionType string    `json:"session_type" gorm:"size:100;not null"`
	Date        string    `json:"date" gorm:"type:char(10);not null;uniqueIndex:idx_booking_slot,priority:1"`
	Time        string    `json:"time" gorm:"type:char(5);not null;uniqueIndex:idx_booking_slot,priority:2"`
	Notes       string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Slot is the (date, time) projection of a booking. It is the only shape
// the public availability endpoint ever sees; no personal data crosses it.
type Slot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
