package auth

import (
	"errors"
	"net/http"
	"strconv"

	"teesheet-service/internal/domain/courseuser"
	"teesheet-service/internal/domain/systemuser"
	"teesheet-service/internal/rbac"
	apperrors "teesheet-service/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Middleware guards echo routes with the two resolvers. Denials always
// produce the uniform message; the expired-vs-malformed distinction is
// only logged.
type Middleware struct {
	systemResolver *SystemResolver
	courseResolver *CourseResolver
	roles          *rbac.Checker
}

func NewMiddleware(systemResolver *SystemResolver, courseResolver *CourseResolver, roles *rbac.Checker) *Middleware {
	return &Middleware{
		systemResolver: systemResolver,
		courseResolver: courseResolver,
		roles:          roles,
	}
}

// RequireSystem authenticates a system-admin principal and stores it in
// the request context.
func (m *Middleware) RequireSystem() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(headerAuthorization)
			user, err := m.systemResolver.Resolve(c.Request().Context(), header)
			if err != nil {
				return denyAuth(c, err)
			}

			c.Set(ContextKeySystemUser, user)
			return next(c)
		}
	}
}

// RequireCourse authenticates a course-staff principal against the
// :course_id path parameter. Every course-scoped route carries it.
func (m *Middleware) RequireCourse() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			courseID, err := strconv.ParseInt(c.Param(paramCourseID), 10, 64)
			if err != nil || courseID <= 0 {
				return respondError(c, http.StatusBadRequest, msgInvalidCourseID)
			}

			header := c.Request().Header.Get(headerAuthorization)
			user, err := m.courseResolver.Resolve(c.Request().Context(), header, courseID)
			if err != nil {
				return denyAuth(c, err)
			}

			c.Set(ContextKeyCourseUser, user)
			return next(c)
		}
	}
}

// RequireCourseRole gates a course-scoped route behind a minimum role.
// Must run after RequireCourse.
func (m *Middleware) RequireCourseRole(minRole rbac.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := CourseUserFrom(c)
			if err != nil {
				return respondError(c, http.StatusUnauthorized, msgNotAuthenticated)
			}

			if !m.roles.AtLeast(rbac.Role(user.Role), minRole) {
				return respondError(c, http.StatusForbidden, msgInsufficientRole)
			}

			return next(c)
		}
	}
}

// denyAuth converts a resolver error into the uniform caller-visible
// denial, logging the internal detail server-side.
func denyAuth(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrMissingToken):
		return respondError(c, http.StatusUnauthorized, msgMissingAuthorization)
	case errors.Is(err, apperrors.ErrInvalidToken):
		if errors.Is(err, jwt.ErrTokenExpired) {
			c.Logger().Infof("auth: expired token: %v", err)
		} else {
			c.Logger().Warnf("auth: rejected token: %v", err)
		}
		return respondError(c, http.StatusUnauthorized, msgInvalidOrExpiredToken)
	case errors.Is(err, apperrors.ErrTenantMismatch):
		c.Logger().Warnf("auth: tenant mismatch: %v", err)
		return respondError(c, http.StatusForbidden, msgWrongGolfCourse)
	case errors.Is(err, apperrors.ErrInactiveOrUnknown):
		return respondError(c, http.StatusUnauthorized, msgInvalidOrInactiveUser)
	default:
		c.Logger().Errorf("auth: resolution failed: %v", err)
		return respondError(c, http.StatusUnauthorized, msgInvalidOrInactiveUser)
	}
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// SystemUserFrom extracts the authenticated system user from the context.
func SystemUserFrom(c echo.Context) (*systemuser.User, error) {
	raw := c.Get(ContextKeySystemUser)
	if raw == nil {
		return nil, apperrors.MissingToken(msgNotAuthenticated)
	}

	user, ok := raw.(*systemuser.User)
	if !ok {
		return nil, apperrors.InternalServer(msgNotAuthenticated, nil)
	}

	return user, nil
}

// CourseUserFrom extracts the authenticated course user from the context.
func CourseUserFrom(c echo.Context) (*courseuser.User, error) {
	raw := c.Get(ContextKeyCourseUser)
	if raw == nil {
		return nil, apperrors.MissingToken(msgNotAuthenticated)
	}

	user, ok := raw.(*courseuser.User)
	if !ok {
		return nil, apperrors.InternalServer(msgNotAuthenticated, nil)
	}

	return user, nil
}
