package handler

import (
	"net/http"
	"strings"

	"teesheet-service/internal/domain/course"
	"teesheet-service/internal/repository"

	"github.com/labstack/echo/v4"
)

// GolfCourseHandler serves tenant management for system admins.
type GolfCourseHandler struct {
	courses repository.GolfCourseRepository
}

func NewGolfCourseHandler(courses repository.GolfCourseRepository) *GolfCourseHandler {
	return &GolfCourseHandler{courses: courses}
}

// List returns every course with its user/customer/booking counts for
// the admin dashboard.
func (h *GolfCourseHandler) List(c echo.Context) error {
	courses, err := h.courses.ListWithCounts(c.Request().Context())
	if err != nil {
		return respondRepoError(c, err, msgCourseNotFound, msgListCoursesFail)
	}

	views := make([]golfCourseCountsView, 0, len(courses))
	for _, gc := range courses {
		views = append(views, viewGolfCourseWithCounts(gc))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":     true,
		"golfCourses": views,
	})
}

func (h *GolfCourseHandler) Get(c echo.Context) error {
	id, ok := pathID(c, paramUserID)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidCourseID)
	}

	gc, err := h.courses.FindByIDWithCounts(c.Request().Context(), id)
	if err != nil {
		return respondRepoError(c, err, msgCourseNotFound, msgListCoursesFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"golfCourse": viewGolfCourseWithCounts(gc),
	})
}

type golfCourseRequest struct {
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Zip              string  `json:"zip"`
	Phone            string  `json:"phone"`
	Website          string  `json:"website"`
	TaxRate          float64 `json:"tax_rate"`
	DiscountRate     float64 `json:"discount_rate"`
	LeadDiscountRate float64 `json:"lead_discount_rate"`
}

func (h *GolfCourseHandler) Create(c echo.Context) error {
	var req golfCourseRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return respondError(c, http.StatusBadRequest, msgCourseNameRequired)
	}

	input := course.CreateCourseInput{
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

	gc, err := h.courses.Create(c.Request().Context(), input)
	if err != nil {
		return respondRepoError(c, err, msgCourseNotFound, msgCreateCourseFail)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":    true,
		"golfCourse": viewGolfCourse(gc),
	})
}

func (h *GolfCourseHandler) Update(c echo.Context) error {
	id, ok := pathID(c, paramUserID)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidCourseID)
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

	gc, err := h.courses.Update(c.Request().Context(), id, input)
	if err != nil {
		return respondRepoError(c, err, msgCourseNotFound, msgUpdateCourseFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":    true,
		"golfCourse": viewGolfCourse(gc),
	})
}

func (h *GolfCourseHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, paramUserID)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidCourseID)
	}

	if err := h.courses.Delete(c.Request().Context(), id); err != nil {
		return respondRepoError(c, err, msgCourseNotFound, msgDeleteCourseFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		jsonKeyMessage: msgCourseDeleted,
	})
}
