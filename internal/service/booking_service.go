package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"jrphotography/internal/cache"
	"jrphotography/internal/model"
	"jrphotography/internal/notify"
	"jrphotography/internal/repository"
)

// ValidationError marks client-correctable input problems; its message is
// sent to the caller verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// NewValidationError wraps a client-facing message as a ValidationError.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

var (
	errMissingFields = &ValidationError{msg: "Please include all required fields."}
	errBadEmail      = &ValidationError{msg: "Please provide a valid email address."}
	errBadPhone      = &ValidationError{msg: "Please provide a valid phone number."}
	errBadDate       = &ValidationError{msg: "Please provide a valid date (YYYY-MM-DD)."}
	errBadTime       = &ValidationError{msg: "Please choose one of the available time slots."}
)

// Lenient patterns: the booking form should not reject unusual but
// plausible contact details.
var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9()\-\s.]{7,}$`)
)

// SubmitInput is a booking request after HTTP binding.
type SubmitInput struct {
	Name        string
	Email       string
	Phone       string
	SessionType string
	Date        string
	Time        string
	Notes       string
}

// SubmitResult is returned to the caller as soon as the booking commits;
// notification delivery happens afterwards in the background.
type SubmitResult struct {
	Booking      *model.Booking
	WhatsAppLink string
}

// AdminBooking is a booking enriched with the dashboard's WhatsApp contact
// shortcut for the customer.
type AdminBooking struct {
	model.Booking
	WhatsAppLink string `json:"whatsappLink"`
}

// BookingService validates and creates bookings and initiates their side
// effects.
type BookingService interface {
	Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error)
	List(ctx context.Context) ([]AdminBooking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingService struct {
	repo     repository.BookingRepository
	linker   *notify.WhatsAppLinker
	notifier notify.Notifier
	cache    *cache.Client
}

// NewBookingService creates a new booking service.
func NewBookingService(
	repo repository.BookingRepository,
	linker *notify.WhatsAppLinker,
	notifier notify.Notifier,
	cacheClient *cache.Client,
) BookingService {
	return &bookingService{
		repo:     repo,
		linker:   linker,
		notifier: notifier,
		cache:    cacheClient,
	}
}

// Submit validates the request, persists the booking atomically and hands
// the confirmation work to the notifier. The returned result is complete
// before any notification is attempted.
func (s *bookingService) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	if err := validate(&input); err != nil {
		return nil, err
	}

	booking := &model.Booking{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		SessionType: input.SessionType,
		Date:        input.Date,
		Time:        input.Time,
		Notes:       input.Notes,
	}

	// The unique slot index decides the conflict; no pre-check read.
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, availabilityCacheKey)

	details := notify.BookingDetails{
		Name:        booking.Name,
		Email:       booking.Email,
		Phone:       booking.Phone,
		SessionType: booking.SessionType,
		Date:        booking.Date,
		Time:        booking.Time,
		Notes:       booking.Notes,
	}
	details.WhatsAppLink = s.linker.BookingLink(details)

	// Fire-and-forget: persistence happened above, the response must not
	// wait on email delivery.
	s.notifier.DispatchBooking(details)

	return &SubmitResult{
		Booking:      booking,
		WhatsAppLink: details.WhatsAppLink,
	}, nil
}

// List returns all bookings for the admin dashboard, newest session date
// first, each with a contact shortcut.
func (s *bookingService) List(ctx context.Context) ([]AdminBooking, error) {
	bookings, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	out := make([]AdminBooking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, AdminBooking{
			Booking: b,
			WhatsAppLink: s.linker.ContactLink(notify.BookingDetails{
				Name:        b.Name,
				Phone:       b.Phone,
				SessionType: b.SessionType,
				Date:        b.Date,
				Time:        b.Time,
			}),
		})
	}
	return out, nil
}

// Delete removes one booking and frees its slot.
func (s *bookingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(ctx, availabilityCacheKey)
	return nil
}

func validate(input *SubmitInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.SessionType = strings.TrimSpace(input.SessionType)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)

	if input.Name == "" || input.Email == "" || input.Phone == "" ||
		input.SessionType == "" || input.Date == "" || input.Time == "" {
		return errMissingFields
	}
	if !emailPattern.MatchString(input.Email) {
		return errBadEmail
	}
	if !phonePattern.MatchString(input.Phone) {
		return errBadPhone
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return errBadDate
	}
	if !validSlot(input.Time) {
		return errBadTime
	}
	return nil
}

func validSlot(t string) bool {
	for _, slot := range Slots {
		if t == slot {
			return true
		}
	}
	return false
}
