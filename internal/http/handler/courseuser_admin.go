package handler

import (
	"net/http"
	"strconv"
	"strings"

	"teesheet-service/internal/domain/courseuser"
	"teesheet-service/internal/rbac"
	"teesheet-service/internal/rbac/presets"
	"teesheet-service/internal/repository"
	"teesheet-service/pkg/password"

	"github.com/labstack/echo/v4"
)

const queryGolfCourseID = "golf_course_id"

// CourseUserAdminHandler serves cross-tenant staff management for system
// admins. Role gating does not apply here; system admins outrank every
// staff role by construction.
type CourseUserAdminHandler struct {
	users repository.CourseUserRepository
	roles *rbac.Checker
}

func NewCourseUserAdminHandler(users repository.CourseUserRepository, roles *rbac.Checker) *CourseUserAdminHandler {
	return &CourseUserAdminHandler{users: users, roles: roles}
}

// List returns staff accounts, optionally narrowed to one course via the
// golf_course_id query parameter.
func (h *CourseUserAdminHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if raw := c.QueryParam(queryGolfCourseID); raw != "" {
		courseID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || courseID <= 0 {
			return respondError(c, http.StatusBadRequest, msgInvalidCourseID)
		}

		users, err := h.users.ListByCourse(ctx, courseID)
		if err != nil {
			return respondRepoError(c, err, msgUserNotFound, msgListUsersFail)
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"success": true,
			"users":   viewCourseUsers(users),
		})
	}

	users, err := h.users.ListAll(ctx)
	if err != nil {
		return respondRepoError(c, err, msgUserNotFound, msgListUsersFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"users":   viewCourseUsers(users),
	})
}

type createCourseUserRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	GolfCourseID int64  `json:"golf_course_id"`
}

func (h *CourseUserAdminHandler) Create(c echo.Context) error {
	var req createCourseUserRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" || req.GolfCourseID <= 0 {
		return respondError(c, http.StatusBadRequest, msgCredentialsRequired)
	}

	if req.Role == "" {
		req.Role = string(presets.RoleStaff)
	}
	if _, err := h.roles.ValidateRole(req.Role); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidRole)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		c.Logger().Errorf("%s: %v", msgPasswordProcessFail, err)
		return respondError(c, http.StatusInternalServerError, msgInternalServerError)
	}

	input := courseuser.CreateUserInput{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		GolfCourseID: req.GolfCourseID,
	}

	user, err := h.users.Create(c.Request().Context(), input, hash)
	if err != nil {
		return respondRepoError(c, err, msgUserNotFound, msgCreateUserFail)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"user":    viewCourseUser(user),
	})
}

type updateCourseUserRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Password  *string `json:"password"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"is_active"`
}

func (h *CourseUserAdminHandler) Update(c echo.Context) error {
	id, ok := pathID(c, paramUserID)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidUserID)
	}

	var req updateCourseUserRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	if req.Role != nil {
		if _, err := h.roles.ValidateRole(*req.Role); err != nil {
			return respondError(c, http.StatusBadRequest, msgInvalidRole)
		}
	}

	input := courseuser.UpdateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		IsActive:  req.IsActive,
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := password.Hash(*req.Password)
		if err != nil {
			c.Logger().Errorf("%s: %v", msgPasswordProcessFail, err)
			return respondError(c, http.StatusInternalServerError, msgInternalServerError)
		}
		input.PasswordHash = &hash
	}

	user, err := h.users.Update(c.Request().Context(), id, input)
	if err != nil {
		return respondRepoError(c, err, msgUserNotFound, msgUpdateUserFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    viewCourseUser(user),
	})
}

func (h *CourseUserAdminHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, paramUserID)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidUserID)
	}

	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return respondRepoError(c, err, msgUserNotFound, msgDeleteUserFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		jsonKeyMessage: msgUserDeleted,
	})
}
