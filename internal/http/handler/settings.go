package handler

import (
	"net/http"
	"strings"

	"teesheet-service/internal/auth"
	"teesheet-service/internal/domain/course"
	"teesheet-service/internal/repository"

	"github.com/labstack/echo/v4"
)

// SettingsHandler serves a course's own settings. Reads are open to any
// authenticated staff; writes are gated MANAGER+ at the route.
type SettingsHandler struct {
	courses repository.GolfCourseRepository
}

func NewSettingsHandler(courses repository.GolfCourseRepository) *SettingsHandler {
	return &SettingsHandler{courses: courses}
}

func (h *SettingsHandler) Get(c echo.Context) error {
	actor, err := auth.CourseUserFrom(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	gc, err := h.courses.FindByID(c.Request().Context(), actor.GolfCourseID)
	if err != nil {
		return respondRepoError(c, err, msgCourseNotFound, msgFetchSettingsFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"golfCourse": viewGolfCourse(gc),
	})
}

func (h *SettingsHandler) Update(c echo.Context) error {
	actor, err := auth.CourseUserFrom(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	var req golfCourseRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return respondError(c, http.StatusBadRequest, msgCourseNameRequired)
	}

	input := course.UpdateCourseInput{
		Name:             req.Name,
		Address:          req.Address,
		City:             req.City,
		State:            req.State,
		Zip:              req.Zip,
		Phone:            req.Phone,
		Website:          req.Website,
		TaxRate:          req.TaxRate,
		DiscountRate:     req.DiscountRate,
		LeadDiscountRate: req.LeadDiscountRate,
	}

	gc, err := h.courses.Update(c.Request().Context(), actor.GolfCourseID, input)
	if err != nil {
		return respondRepoError(c, err, msgCourseNotFound, msgUpdateSettingsFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"golfCourse": viewGolfCourse(gc),
	})
}
