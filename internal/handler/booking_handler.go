package handler

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jrphotography/internal/errors"
	"jrphotography/internal/service"
)

// BookingHandler handles booking and availability endpoints.
type BookingHandler struct {
	bookingService      service.BookingService
	availabilityService service.AvailabilityService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService, availabilityService service.AvailabilityService) *BookingHandler {
	return &BookingHandler{
		bookingService:      bookingService,
		availabilityService: availabilityService,
	}
}

// BookRequest is the public booking form payload.
type BookRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	SessionType string `json:"session_type"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes"`
}

// BookedSummary echoes the created booking's key fields.
type BookedSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	SessionType string `json:"session_type"`
}

// BookResponse is the legacy success envelope the booking page expects.
type BookResponse struct {
	Success      bool          `json:"success"`
	Msg          string        `json:"msg"`
	Booking      BookedSummary `json:"booking"`
	WhatsAppLink string        `json:"whatsappLink"`
	EmailStatus  string        `json:"emailStatus"`
}

// BookErrorResponse is the legacy failure envelope.
type BookErrorResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

// Book godoc
// @Summary Create a new booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body BookRequest true "Booking data"
// @Success 201 {object} BookResponse
// @Failure 400 {object} BookErrorResponse
// @Failure 409 {object} BookErrorResponse
// @Failure 500 {object} BookErrorResponse
// @Router /book [post]
func (h *BookingHandler) Book(c echo.Context) error {
	var req BookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, BookErrorResponse{
			Success: false,
			Msg:     "Please include all required fields.",
		})
	}

	result, err := h.bookingService.Submit(c.Request().Context(), service.SubmitInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		SessionType: req.SessionType,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case stderrors.As(err, &vErr):
			return c.JSON(http.StatusBadRequest, BookErrorResponse{
				Success: false,
				Msg:     vErr.Error(),
			})
		case stderrors.Is(err, errors.ErrSlotTaken):
			return c.JSON(http.StatusConflict, BookErrorResponse{
				Success: false,
				Msg:     "This date and time slot is already booked. Please choose another.",
			})
		default:
			return c.JSON(http.StatusInternalServerError, BookErrorResponse{
				Success: false,
				Msg:     "Server error during booking.",
			})
		}
	}

	return c.JSON(http.StatusCreated, BookResponse{
		Success: true,
		Msg:     "Booking confirmed successfully!",
		Booking: BookedSummary{
			ID:          result.Booking.ID.String(),
			Name:        result.Booking.Name,
			Date:        result.Booking.Date,
			Time:        result.Booking.Time,
			SessionType: result.Booking.SessionType,
		},
		WhatsAppLink: result.WhatsAppLink,
		EmailStatus:  "pending",
	})
}

// Availability godoc
// @Summary List all booked slots
// @Description Returns the (date, time) pair of every booking; no personal data.
// @Tags bookings
// @Produce json
// @Success 200 {array} model.Slot
// @Failure 500 {object} errors.ErrorResponse
// @Router /availability [get]
func (h *BookingHandler) Availability(c echo.Context) error {
	slots, err := h.availabilityService.BookedSlots(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, slots)
}

// MonthAvailability godoc
// @Summary Day-by-day availability for one month
// @Tags bookings
// @Produce json
// @Param month query string false "Month as YYYY-MM (defaults to current month)"
// @Success 200 {array} service.DayAvailability
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /availability/month [get]
func (h *BookingHandler) MonthAvailability(c echo.Context) error {
	monthParam := c.QueryParam("month")
	var year int
	var month time.Month
	if monthParam == "" {
		now := time.Now()
		year, month = now.Year(), now.Month()
	} else {
		parsed, err := time.Parse("2006-01", monthParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "month must be formatted as YYYY-MM",
				Code:  "INVALID_MONTH",
			})
		}
		year, month = parsed.Year(), parsed.Month()
	}

	days, err := h.availabilityService.Month(c.Request().Context(), year, month)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, days)
}

// ListBookings godoc
// @Summary List all bookings (admin)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.AdminBooking
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.bookingService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, bookings)
}

// DeleteBooking godoc
// @Summary Delete a booking (admin)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid booking id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.bookingService.Delete(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
