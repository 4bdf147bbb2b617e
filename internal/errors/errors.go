package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrSlotTaken is returned when a booking exists for the same date and time.
	ErrSlotTaken = errors.New("this date and time slot is already booked")
	// ErrBookingNotFound is returned when a booking is not found.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrPackageNotFound is returned when a service package is not found.
	ErrPackageNotFound = errors.New("package not found")
	// ErrPackageExists is returned when creating a package with a taken name.
	ErrPackageExists = errors.New("package with this name already exists")
	// ErrPortfolioItemNotFound is returned when a portfolio item is not found.
	ErrPortfolioItemNotFound = errors.New("portfolio item not found")
	// ErrUserNotFound is returned when an admin user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when creating a user with a taken username.
	ErrUserExists = errors.New("user already exists")
	// ErrLastAdmin is returned when deleting the only remaining admin user.
	ErrLastAdmin = errors.New("cannot delete the last admin user")
	// ErrInvalidCategory is returned when a portfolio category is not recognised.
	ErrInvalidCategory = errors.New("invalid portfolio category")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrSlotTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "SLOT_TAKEN")
	case ErrBookingNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "BOOKING_NOT_FOUND")
	case ErrPackageNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PACKAGE_NOT_FOUND")
	case ErrPackageExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "PACKAGE_EXISTS")
	case ErrPortfolioItemNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PORTFOLIO_ITEM_NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrUserExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_EXISTS")
	case ErrLastAdmin:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "LAST_ADMIN")
	case ErrInvalidCategory:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CATEGORY")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
