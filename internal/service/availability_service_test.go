package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"jrphotography/internal/model"
)

func newTestAvailabilityService(repo *MockBookingRepository, today string) *availabilityService {
	svc := NewAvailabilityService(repo, nil).(*availabilityService)
	svc.now = func() time.Time {
		t, _ := time.Parse("2006-01-02", today)
		return t.Add(10 * time.Hour)
	}
	return svc
}

func allSlotsOn(date string) []model.Slot {
	slots := make([]model.Slot, 0, len(Slots))
	for _, t := range Slots {
		slots = append(slots, model.Slot{Date: date, Time: t})
	}
	return slots
}

func TestAvailabilityService_BookedSlots_NeverNil(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("FindSlots", mock.Anything).Return([]model.Slot{}, nil)
	svc := newTestAvailabilityService(repo, "2025-06-15")

	slots, err := svc.BookedSlots(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestAvailabilityService_Month_CoversEveryDay(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("FindSlots", mock.Anything).Return([]model.Slot{}, nil)
	svc := newTestAvailabilityService(repo, "2025-06-15")

	days, err := svc.Month(context.Background(), 2025, time.June)

	assert.NoError(t, err)
	assert.Len(t, days, 30)
	assert.Equal(t, "2025-06-01", days[0].Date)
	assert.Equal(t, "2025-06-30", days[29].Date)
}

func TestAvailabilityService_Month_Statuses(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("FindSlots", mock.Anything).Return(append(
		allSlotsOn("2025-06-20"),
		model.Slot{Date: "2025-06-25", Time: "09:00"},
		model.Slot{Date: "2025-06-25", Time: "13:00"},
	), nil)
	svc := newTestAvailabilityService(repo, "2025-06-15")

	days, err := svc.Month(context.Background(), 2025, time.June)
	assert.NoError(t, err)

	byDate := make(map[string]DayAvailability, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}

	for dayNum := 1; dayNum <= 14; dayNum++ {
		date := time.Date(2025, time.June, dayNum, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		assert.Equal(t, DayStatusPast, byDate[date].Status, date)
	}
	assert.Equal(t, DayStatusOpen, byDate["2025-06-15"].Status, "today is selectable")
	assert.Equal(t, DayStatusFullyBooked, byDate["2025-06-20"].Status)
	assert.ElementsMatch(t, Slots, byDate["2025-06-20"].BookedTimes)

	partial := byDate["2025-06-25"]
	assert.Equal(t, DayStatusOpen, partial.Status)
	assert.Equal(t, []string{"09:00", "13:00"}, partial.BookedTimes)
}

func TestAvailabilityService_Month_PastWinsOverFullyBooked(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("FindSlots", mock.Anything).Return(allSlotsOn("2025-06-05"), nil)
	svc := newTestAvailabilityService(repo, "2025-06-15")

	days, err := svc.Month(context.Background(), 2025, time.June)
	assert.NoError(t, err)

	assert.Equal(t, DayStatusPast, days[4].Status)
	assert.ElementsMatch(t, Slots, days[4].BookedTimes, "booked times are still reported for past days")
}
