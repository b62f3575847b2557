package auth

const (
	ContextKeySystemUser = "system_user"
	ContextKeyCourseUser = "course_user"

	headerAuthorization = "Authorization"

	paramCourseID = "course_id"

	bearerScheme    = "bearer"
	authHeaderParts = 2
)

const (
	msgMissingAuthorization  = "authorization token required"
	msgInvalidOrExpiredToken = "invalid or expired token"
	msgInvalidOrInactiveUser = "invalid or inactive user"
	msgWrongGolfCourse       = "user does not belong to this golf course"
	msgInsufficientRole      = "insufficient permissions"
	msgInvalidCourseID       = "invalid course ID"
	msgNotAuthenticated      = "not authenticated"

	msgUnexpectedSigningMethod = "unexpected signing method: %v"
	msgTokenParseFailed        = "failed to parse token: %w"
	msgInvalidTokenClaims      = "invalid token claims"
)
