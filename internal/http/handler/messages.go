package handler

const (
	jsonKeyError   = "error"
	jsonKeyMessage = "message"
)

const (
	msgInvalidRequestBody      = "invalid request body"
	msgContentTypeJSONRequired = "Content-Type must be application/json"

	msgCredentialsRequired   = "Username and password are required"
	msgInvalidCredentials    = "Invalid credentials"
	msgAccountDeactivated    = "Account is deactivated"
	msgLoggedOut             = "Logged out successfully"
	msgGenerateTokenFail     = "failed to generate token"
	msgPasswordProcessFail   = "failed to process password"
	msgNameAndPasswordNeeded = "Name and password are required"

	msgInvalidUserID       = "Invalid user ID"
	msgInvalidCourseID     = "Invalid course ID"
	msgInvalidDeviceID     = "Invalid device ID"
	msgNameRequired        = "Name is required"
	msgCourseNameRequired  = "Golf course name is required"
	msgDeviceFieldsNeeded  = "Name, hardware ID, and golf course ID are required"
	msgCannotDeleteSelf    = "Cannot delete your own account"
	msgCannotManageUser    = "Cannot manage this user"
	msgUserNotFound        = "User not found"
	msgCourseNotFound      = "Golf course not found"
	msgDeviceNotFound      = "Device not found"
	msgInvalidRole         = "Invalid role"
	msgInsufficientRole    = "Insufficient permissions"
	msgListUsersFail       = "Failed to fetch users"
	msgCreateUserFail      = "Failed to create user"
	msgUpdateUserFail      = "Failed to update user"
	msgDeleteUserFail      = "Failed to delete user"
	msgListCoursesFail     = "Failed to fetch golf courses"
	msgCreateCourseFail    = "Failed to create golf course"
	msgUpdateCourseFail    = "Failed to update golf course"
	msgDeleteCourseFail    = "Failed to delete golf course"
	msgListDevicesFail     = "Failed to fetch devices"
	msgCreateDeviceFail    = "Failed to create device"
	msgUpdateDeviceFail    = "Failed to update device"
	msgDeleteDeviceFail    = "Failed to delete device"
	msgListBookingsFail    = "Failed to fetch bookings"
	msgListOrdersFail      = "Failed to fetch check-in orders"
	msgListSlotsFail       = "Failed to fetch tee time sheet"
	msgFetchSettingsFail   = "Failed to fetch golf course settings"
	msgUpdateSettingsFail  = "Failed to update golf course settings"
	msgInvalidDateFilter   = "Invalid date filter"
	msgInternalServerError = "Internal server error"

	msgUserDeleted   = "User deleted successfully"
	msgCourseDeleted = "Golf course deleted successfully"
	msgDeviceDeleted = "Device deleted successfully"
)
