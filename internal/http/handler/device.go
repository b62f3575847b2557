package handler

import (
	"net/http"
	"strings"

	"teesheet-service/internal/domain/device"
	"teesheet-service/internal/repository"

	"github.com/labstack/echo/v4"
)

// DeviceHandler serves check-in device registration for system admins.
type DeviceHandler struct {
	devices repository.DeviceRepository
}

func NewDeviceHandler(devices repository.DeviceRepository) *DeviceHandler {
	return &DeviceHandler{devices: devices}
}

func (h *DeviceHandler) List(c echo.Context) error {
	devices, err := h.devices.List(c.Request().Context())
	if err != nil {
		return respondRepoError(c, err, msgDeviceNotFound, msgListDevicesFail)
	}

	views := make([]deviceView, 0, len(devices))
	for _, d := range devices {
		views = append(views, viewDevice(d))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"devices": views,
	})
}

func (h *DeviceHandler) Get(c echo.Context) error {
	id, ok := pathID(c, paramUserID)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidDeviceID)
	}

	d, err := h.devices.FindByID(c.Request().Context(), id)
	if err != nil {
		return respondRepoError(c, err, msgDeviceNotFound, msgListDevicesFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"device":  viewDevice(d),
	})
}

type createDeviceRequest struct {
	Name         string `json:"name"`
	DeviceType   string `json:"device_type"`
	HardwareID   string `json:"hardware_id"`
	IsActive     *bool  `json:"is_active"`
	GolfCourseID int64  `json:"golf_course_id"`
}

func (h *DeviceHandler) Create(c echo.Context) error {
	var req createDeviceRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Name = strings.TrimSpace(req.Name)
	req.HardwareID = strings.TrimSpace(req.HardwareID)
	if req.Name == "" || req.HardwareID == "" || req.GolfCourseID <= 0 {
		return respondError(c, http.StatusBadRequest, msgDeviceFieldsNeeded)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	input := device.CreateDeviceInput{
		Name:         req.Name,
		DeviceType:   req.DeviceType,
		HardwareID:   req.HardwareID,
		IsActive:     active,
		GolfCourseID: req.GolfCourseID,
	}

	d, err := h.devices.Create(c.Request().Context(), input)
	if err != nil {
		return respondRepoError(c, err, msgDeviceNotFound, msgCreateDeviceFail)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"device":  viewDevice(d),
	})
}

type updateDeviceRequest struct {
	Name         *string `json:"name"`
	DeviceType   *string `json:"device_type"`
	HardwareID   *string `json:"hardware_id"`
	IsActive     *bool   `json:"is_active"`
	GolfCourseID *int64  `json:"golf_course_id"`
}

func (h *DeviceHandler) Update(c echo.Context) error {
	id, ok := pathID(c, paramUserID)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidDeviceID)
	}

	var req updateDeviceRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	input := device.UpdateDeviceInput{
		Name:         req.Name,
		DeviceType:   req.DeviceType,
		HardwareID:   req.HardwareID,
		IsActive:     req.IsActive,
		GolfCourseID: req.GolfCourseID,
	}

	d, err := h.devices.Update(c.Request().Context(), id, input)
	if err != nil {
		return respondRepoError(c, err, msgDeviceNotFound, msgUpdateDeviceFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"device":  viewDevice(d),
	})
}

func (h *DeviceHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, paramUserID)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidDeviceID)
	}

	if err := h.devices.Delete(c.Request().Context(), id); err != nil {
		return respondRepoError(c, err, msgDeviceNotFound, msgDeleteDeviceFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		jsonKeyMessage: msgDeviceDeleted,
	})
}
