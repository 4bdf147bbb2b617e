package repository

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "jrphotography/internal/errors"
	"jrphotography/internal/model"
)

// mysqlDuplicateEntry is the MySQL error number for unique index violations.
const mysqlDuplicateEntry = 1062

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	ListAll(ctx context.Context) ([]model.Booking, error)
	FindSlots(ctx context.Context) ([]model.Slot, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts a new booking. The unique index on (date, time) makes the
// check-and-insert atomic; a duplicate slot surfaces as ErrSlotTaken.
func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	err := r.db.WithContext(ctx).Create(booking).Error
	if err != nil {
		if isDuplicateKey(err) {
			return apperrors.ErrSlotTaken
		}
		return err
	}
	return nil
}

// ListAll returns all bookings, most recent session date first.
func (r *bookingRepository) ListAll(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindSlots returns only the (date, time) pairs of all bookings. This is
// the projection served to the public availability endpoint, so no other
// columns are selected.
func (r *bookingRepository) FindSlots(ctx context.Context) ([]model.Slot, error) {
	var slots []model.Slot
	if err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Select("date", "time").
		Order("date ASC, time ASC").
		Scan(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// DeleteByID removes one booking.
func (r *bookingRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Booking{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrBookingNotFound
	}
	return nil
}

// isDuplicateKey reports whether err is a unique constraint violation.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}
