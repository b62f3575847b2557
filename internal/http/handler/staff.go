package handler

import (
	"net/http"
	"strings"

	"teesheet-service/internal/auth"
	"teesheet-service/internal/domain/courseuser"
	"teesheet-service/internal/rbac"
	"teesheet-service/internal/rbac/presets"
	"teesheet-service/internal/repository"
	"teesheet-service/pkg/password"

	"github.com/labstack/echo/v4"
)

// StaffHandler serves course-scoped staff management. Routes run behind
// RequireCourse + RequireCourseRole(MANAGER); on top of the route gate,
// every mutation re-checks CanManage against the live target record.
type StaffHandler struct {
	users repository.CourseUserRepository
	roles *rbac.Checker
}

func NewStaffHandler(users repository.CourseUserRepository, roles *rbac.Checker) *StaffHandler {
	return &StaffHandler{users: users, roles: roles}
}

func (h *StaffHandler) List(c echo.Context) error {
	actor, err := auth.CourseUserFrom(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	users, err := h.users.ListByCourse(c.Request().Context(), actor.GolfCourseID)
	if err != nil {
		return respondRepoError(c, err, msgUserNotFound, msgListUsersFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"users":   viewCourseUsers(users),
	})
}

type createStaffRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// Create provisions a staff account in the actor's course. The new
// account's role may not outrank the actor.
func (h *StaffHandler) Create(c echo.Context) error {
	actor, err := auth.CourseUserFrom(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	var req createStaffRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return respondError(c, http.StatusBadRequest, msgCredentialsRequired)
	}

	if req.Role == "" {
		req.Role = string(presets.RoleStaff)
	}
	if _, err := h.roles.ValidateRole(req.Role); err != nil {
		return respondError(c, http.StatusBadRequest, msgInvalidRole)
	}

	if h.roles.Level(rbac.Role(req.Role)) > h.roles.Level(rbac.Role(actor.Role)) {
		return respondError(c, http.StatusForbidden, msgCannotManageUser)
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
		GolfCourseID: actor.GolfCourseID,
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

// Update edits a staff account in the actor's course. The target is
// always loaded fresh so the management check runs against the current
// role, not a stale one, and never against the actor's own record.
func (h *StaffHandler) Update(c echo.Context) error {
	actor, err := auth.CourseUserFrom(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	id, ok := pathID(c, paramUserID)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidUserID)
	}

	target, err := h.users.FindByCourseAndID(c.Request().Context(), actor.GolfCourseID, id)
	if err != nil {
		return respondRepoError(c, err, msgUserNotFound, msgUpdateUserFail)
	}

	if !h.roles.CanManage(rbac.Role(actor.Role), actor.ID, rbac.Role(target.Role), target.ID) {
		return respondError(c, http.StatusForbidden, msgCannotManageUser)
	}

	var req updateCourseUserRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	if req.Role != nil {
		if _, err := h.roles.ValidateRole(*req.Role); err != nil {
			return respondError(c, http.StatusBadRequest, msgInvalidRole)
		}
		if h.roles.Level(rbac.Role(*req.Role)) > h.roles.Level(rbac.Role(actor.Role)) {
			return respondError(c, http.StatusForbidden, msgCannotManageUser)
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

func (h *StaffHandler) Delete(c echo.Context) error {
	actor, err := auth.CourseUserFrom(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	id, ok := pathID(c, paramUserID)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidUserID)
	}

	target, err := h.users.FindByCourseAndID(c.Request().Context(), actor.GolfCourseID, id)
	if err != nil {
		return respondRepoError(c, err, msgUserNotFound, msgDeleteUserFail)
	}

	if !h.roles.CanManage(rbac.Role(actor.Role), actor.ID, rbac.Role(target.Role), target.ID) {
		return respondError(c, http.StatusForbidden, msgCannotManageUser)
	}

	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return respondRepoError(c, err, msgUserNotFound, msgDeleteUserFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		jsonKeyMessage: msgUserDeleted,
	})
}
