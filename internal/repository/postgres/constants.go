package postgres

import "time"

const (
	poolHealthCheckPeriod = 1 * time.Minute
	poolMaxConnLifetime   = 1 * time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	dbPingTimeout         = 5 * time.Second
)

const (
	errSystemUserNotFound = "system user not found"
	errCourseUserNotFound = "user not found"
	errGolfCourseNotFound = "golf course not found"
	errDeviceNotFound     = "device not found"

	errSystemUserNameExists = "user with this name already exists"
	errCourseUsernameExists = "username already exists for this golf course"
	errDeviceHardwareExists = "device with this hardware ID already exists"
)
