package handler

import (
	"errors"
	"net/http"
	"strings"

	"teesheet-service/internal/auth"
	"teesheet-service/internal/repository"
	apperrors "teesheet-service/pkg/errors"
	"teesheet-service/pkg/password"

	"github.com/labstack/echo/v4"
)

const paramCourseID = "course_id"

// CourseAuthHandler serves staff authentication for one golf course.
// Login is addressed to a course; an unknown course is a 404 while bad
// credentials stay a uniform 401.
type CourseAuthHandler struct {
	users   repository.CourseUserRepository
	courses repository.GolfCourseRepository
	tokens  *auth.TokenService
}

func NewCourseAuthHandler(users repository.CourseUserRepository, courses repository.GolfCourseRepository, tokens *auth.TokenService) *CourseAuthHandler {
	return &CourseAuthHandler{users: users, courses: courses, tokens: tokens}
}

type courseLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates a staff member against the course in the path and
// issues a long-lived token bound to that course.
func (h *CourseAuthHandler) Login(c echo.Context) error {
	courseID, ok := pathID(c, paramCourseID)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidCourseID)
	}

	var req courseLoginRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return respondError(c, http.StatusBadRequest, msgCredentialsRequired)
	}

	ctx := c.Request().Context()

	gc, err := h.courses.FindByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, http.StatusNotFound, msgCourseNotFound)
		}
		c.Logger().Errorf("auth: course lookup failed for login: %v", err)
		return respondError(c, http.StatusInternalServerError, msgInternalServerError)
	}

	user, err := h.users.FindByUsername(ctx, courseID, req.Username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			c.Logger().Errorf("auth: staff lookup failed for login: %v", err)
		}
		password.Verify(req.Password, dummyHash)
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	if !user.IsActive {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	token, err := h.tokens.GenerateCourseToken(user.ID, user.Username, user.Role, user.GolfCourseID)
	if err != nil {
		c.Logger().Errorf("%s: %v", msgGenerateTokenFail, err)
		return respondError(c, http.StatusInternalServerError, msgInternalServerError)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
		"user":    viewCourseUserWithCourse(user, gc),
	})
}

// Logout acknowledges the client discarding its token; nothing is
// revoked server-side and repeated calls succeed.
func (h *CourseAuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		jsonKeyMessage: msgLoggedOut,
	})
}
