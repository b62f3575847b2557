package handler

import (
	"net/http"

	"teesheet-service/internal/auth"
	"teesheet-service/internal/domain/teetime"
	"teesheet-service/internal/repository"

	"github.com/labstack/echo/v4"
)

// TeeTimeHandler serves the daily tee-time sheet.
type TeeTimeHandler struct {
	slots repository.TeeTimeRepository
}

func NewTeeTimeHandler(slots repository.TeeTimeRepository) *TeeTimeHandler {
	return &TeeTimeHandler{slots: slots}
}

func (h *TeeTimeHandler) List(c echo.Context) error {
	actor, err := auth.CourseUserFrom(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	date, ok := parseDateFilter(c)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidDateFilter)
	}

	filter := teetime.ListFilter{
		GolfCourseID: actor.GolfCourseID,
		Date:         date,
	}

	slots, err := h.slots.List(c.Request().Context(), filter)
	if err != nil {
		return respondRepoError(c, err, msgListSlotsFail, msgListSlotsFail)
	}

	views := make([]teeTimeSlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, viewTeeTimeSlot(s))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"slots":   views,
	})
}
