package service

import (
	"context"
	"fmt"
	"time"

	"jrphotography/internal/cache"
	"jrphotography/internal/model"
	"jrphotography/internal/repository"
)

// Slots is the fixed set of bookable times: a seven-slot business day with
// a lunch gap. Configuration, not derived data.
var Slots = []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"}

const (
	availabilityCacheKey = "availability:slots"
	availabilityCacheTTL = 30 * time.Second
)

// DayStatus classifies one calendar day for rendering. The distinction
// between past and fully_booked matters to the UI: both are non-selectable
// but for different displayed reasons.
type DayStatus string

const (
	DayStatusPast        DayStatus = "past"
	DayStatusFullyBooked DayStatus = "fully_booked"
	DayStatusOpen        DayStatus = "open"
)

// DayAvailability is one day of the month view.
type DayAvailability struct {
	Date        string    `json:"date"`
	Status      DayStatus `json:"status"`
	BookedTimes []string  `json:"booked_times"`
}

// AvailabilityService derives calendar-rendering shapes from booked slots.
type AvailabilityService interface {
	BookedSlots(ctx context.Context) ([]model.Slot, error)
	Month(ctx context.Context, year int, month time.Month) ([]DayAvailability, error)
}

type availabilityService struct {
	repo  repository.BookingRepository
	cache *cache.Client
	now   func() time.Time
}

// NewAvailabilityService creates a new availability service.
func NewAvailabilityService(repo repository.BookingRepository, cacheClient *cache.Client) AvailabilityService {
	return &availabilityService{
		repo:  repo,
		cache: cacheClient,
		now:   time.Now,
	}
}

// BookedSlots returns the (date, time) pairs of every booking, with a short
// cache in front since the public calendar polls this on every page load.
func (s *availabilityService) BookedSlots(ctx context.Context) ([]model.Slot, error) {
	var cached []model.Slot
	if s.cache.GetJSON(ctx, availabilityCacheKey, &cached) {
		return cached, nil
	}

	slots, err := s.repo.FindSlots(ctx)
	if err != nil {
		return nil, fmt.Errorf("find slots: %w", err)
	}
	if slots == nil {
		slots = []model.Slot{}
	}

	s.cache.SetJSON(ctx, availabilityCacheKey, slots, availabilityCacheTTL)

	return slots, nil
}

// Month computes the day-by-day availability of one calendar month. Days
// strictly before today are past regardless of booking state; a day whose
// configured slots are all taken is fully booked; everything else is open.
func (s *availabilityService) Month(ctx context.Context, year int, month time.Month) ([]DayAvailability, error) {
	booked, err := s.BookedSlots(ctx)
	if err != nil {
		return nil, err
	}

	takenByDate := make(map[string]map[string]bool)
	for _, slot := range booked {
		if takenByDate[slot.Date] == nil {
			takenByDate[slot.Date] = make(map[string]bool)
		}
		takenByDate[slot.Date][slot.Time] = true
	}

	today := s.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]DayAvailability, 0, daysInMonth)
	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		day := time.Date(year, month, dayNum, 0, 0, 0, 0, today.Location())
		dateStr := day.Format("2006-01-02")
		taken := takenByDate[dateStr]

		bookedTimes := make([]string, 0, len(taken))
		for _, slot := range Slots {
			if taken[slot] {
				bookedTimes = append(bookedTimes, slot)
			}
		}

		status := DayStatusOpen
		switch {
		case day.Before(today):
			status = DayStatusPast
		case len(bookedTimes) == len(Slots):
			status = DayStatusFullyBooked
		}

		days = append(days, DayAvailability{
			Date:        dateStr,
			Status:      status,
			BookedTimes: bookedTimes,
		})
	}

	return days, nil
}
