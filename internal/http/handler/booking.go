package handler

import (
	"net/http"
	"time"

	"teesheet-service/internal/auth"
	"teesheet-service/internal/domain/booking"
	"teesheet-service/internal/repository"

	"github.com/labstack/echo/v4"
)

const (
	queryDate   = "date"
	queryStatus = "status"

	dateLayout = "2006-01-02"
)

// parseDateFilter reads an optional YYYY-MM-DD query parameter.
func parseDateFilter(c echo.Context) (*time.Time, bool) {
	raw := c.QueryParam(queryDate)
	if raw == "" {
		return nil, true
	}

	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, false
	}
	return &d, true
}

// BookingHandler serves booking reads for the course dashboard.
type BookingHandler struct {
	bookings repository.BookingRepository
}

func NewBookingHandler(bookings repository.BookingRepository) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func (h *BookingHandler) List(c echo.Context) error {
	actor, err := auth.CourseUserFrom(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	date, ok := parseDateFilter(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidDateFilter)
	}

	filter := booking.ListFilter{
		GolfCourseID: actor.GolfCourseID,
		Date:         date,
		Status:       booking.Status(c.QueryParam(queryStatus)),
	}

	bookings, err := h.bookings.List(c.Request().Context(), filter)
	if err != nil {
		return respondRepoError(c, err, msgListBookingsFail, msgListBookingsFail)
	}

	views := make([]bookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, viewBooking(b))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":  true,
		"bookings": views,
	})
}
