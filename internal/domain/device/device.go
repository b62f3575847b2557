package device

import "time"

// Device is a check-in kiosk or card reader registered to a golf course.
// HardwareID is the vendor serial and must be globally unique.
type Device struct {
	ID           int64
	Name         string
	DeviceType   string
	HardwareID   string
	IsActive     bool
	GolfCourseID int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateDeviceInput struct {
	Name         string
	DeviceType   string
	HardwareID   string
	IsActive     bool
	GolfCourseID int64
}

type UpdateDeviceInput struct {
	Name         *string
	DeviceType   *string
	HardwareID   *string
	IsActive     *bool
	GolfCourseID *int64
}
