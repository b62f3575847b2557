package repository

import (
	"context"

	"teesheet-service/internal/domain/booking"
	"teesheet-service/internal/domain/checkin"
	"teesheet-service/internal/domain/course"
	"teesheet-service/internal/domain/courseuser"
	"teesheet-service/internal/domain/device"
	"teesheet-service/internal/domain/systemuser"
	"teesheet-service/internal/domain/teetime"
)

// SystemUserRepository defines system-admin account data access
type SystemUserRepository interface {
	Create(ctx context.Context, input systemuser.CreateUserInput, passwordHash string) (*systemuser.User, error)
	FindByID(ctx context.Context, id int64) (*systemuser.User, error)
	FindByName(ctx context.Context, name string) (*systemuser.User, error)
	List(ctx context.Context) ([]*systemuser.User, error)
	Update(ctx context.Context, id int64, input systemuser.UpdateUserInput) (*systemuser.User, error)
	Delete(ctx context.Context, id int64) error
}

// CourseUserRepository defines staff account data access. Usernames are
// unique per golf course, so lookups by username always carry the course.
type CourseUserRepository interface {
	Create(ctx context.Context, input courseuser.CreateUserInput, passwordHash string) (*courseuser.User, error)
	FindByID(ctx context.Context, id int64) (*courseuser.User, error)
	FindByUsername(ctx context.Context, golfCourseID int64, username string) (*courseuser.User, error)
	FindByCourseAndID(ctx context.Context, golfCourseID, id int64) (*courseuser.User, error)
	ListByCourse(ctx context.Context, golfCourseID int64) ([]*courseuser.User, error)
	ListAll(ctx context.Context) ([]*courseuser.User, error)
	Update(ctx context.Context, id int64, input courseuser.UpdateUserInput) (*courseuser.User, error)
	Delete(ctx context.Context, id int64) error
}

// GolfCourseRepository defines tenant data access
type GolfCourseRepository interface {
	Create(ctx context.Context, input course.CreateCourseInput) (*course.GolfCourse, error)
	FindByID(ctx context.Context, id int64) (*course.GolfCourse, error)
	FindByIDWithCounts(ctx context.Context, id int64) (*course.WithCounts, error)
	ListWithCounts(ctx context.Context) ([]*course.WithCounts, error)
	Update(ctx context.Context, id int64, input course.UpdateCourseInput) (*course.GolfCourse, error)
	Delete(ctx context.Context, id int64) error
}

// DeviceRepository defines check-in device data access
type DeviceRepository interface {
	Create(ctx context.Context, input device.CreateDeviceInput) (*device.Device, error)
	FindByID(ctx context.Context, id int64) (*device.Device, error)
	FindByHardwareID(ctx context.Context, hardwareID string) (*device.Device, error)
	List(ctx context.Context) ([]*device.Device, error)
	Update(ctx context.Context, id int64, input device.UpdateDeviceInput) (*device.Device, error)
	Delete(ctx context.Context, id int64) error
}

// BookingRepository defines booking reads for course dashboards
type BookingRepository interface {
	List(ctx context.Context, filter booking.ListFilter) ([]*booking.Booking, error)
}

// CheckInOrderRepository defines check-in order reads for reporting
type CheckInOrderRepository interface {
	List(ctx context.Context, filter checkin.ListFilter) ([]*checkin.Order, error)
}

// TeeTimeRepository defines tee-time sheet reads
type TeeTimeRepository interface {
	List(ctx context.Context, filter teetime.ListFilter) ([]*teetime.Slot, error)
}
