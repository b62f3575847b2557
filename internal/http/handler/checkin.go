package handler

import (
	"net/http"

	"teesheet-service/internal/auth"
	"teesheet-service/internal/domain/checkin"
	"teesheet-service/internal/repository"

	"github.com/labstack/echo/v4"
)

const queryPaymentStatus = "payment_status"

// CheckInHandler serves check-in order reads for course reporting.
type CheckInHandler struct {
	orders repository.CheckInOrderRepository
}

func NewCheckInHandler(orders repository.CheckInOrderRepository) *CheckInHandler {
	return &CheckInHandler{orders: orders}
}

func (h *CheckInHandler) List(c echo.Context) error {
	actor, err := auth.CourseUserFrom(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	date, ok := parseDateFilter(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidDateFilter)
	}

	filter := checkin.ListFilter{
		GolfCourseID:  actor.GolfCourseID,
		Date:          date,
		PaymentStatus: checkin.PaymentStatus(c.QueryParam(queryPaymentStatus)),
	}

	orders, err := h.orders.List(c.Request().Context(), filter)
	if err != nil {
		return respondRepoError(c, err, msgListOrdersFail, msgListOrdersFail)
	}

	views := make([]checkinOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, viewCheckinOrder(o))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"orders":  views,
	})
}
