package handler

import (
	"net/http"
	"strings"

	"teesheet-service/internal/auth"
	"teesheet-service/internal/domain/systemuser"
	"teesheet-service/internal/repository"
	"teesheet-service/pkg/password"

	"github.com/labstack/echo/v4"
)

const paramUserID = "id"

// SystemUserHandler serves system-admin account management. All routes
// run behind RequireSystem.
type SystemUserHandler struct {
	users repository.SystemUserRepository
}

func NewSystemUserHandler(users repository.SystemUserRepository) *SystemUserHandler {
	return &SystemUserHandler{users: users}
}

func (h *SystemUserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return respondRepoError(c, err, msgUserNotFound, msgListUsersFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"users":   viewSystemUsers(users),
	})
}

func (h *SystemUserHandler) Get(c echo.Context) error {
	id, ok := pathID(c, paramUserID)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidUserID)
	}

	user, err := h.users.FindByID(c.Request().Context(), id)
	if err != nil {
		return respondRepoError(c, err, msgUserNotFound, msgListUsersFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    viewSystemUser(user),
	})
}

type updateSystemUserRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password *string `json:"password"`
	Role     string  `json:"role"`
	IsActive *bool   `json:"is_active"`
}

func (h *SystemUserHandler) Update(c echo.Context) error {
	id, ok := pathID(c, paramUserID)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidUserID)
	}

	var req updateSystemUserRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return respondError(c, http.StatusBadRequest, msgNameRequired)
	}

	current, err := h.users.FindByID(c.Request().Context(), id)
	if err != nil {
		return respondRepoError(c, err, msgUserNotFound, msgUpdateUserFail)
	}

	input := systemuser.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     current.Role,
		IsActive: current.IsActive,
	}
	if req.Role != "" {
		input.Role = req.Role
	}
	if req.IsActive != nil {
		input.IsActive = *req.IsActive
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
		"user":    viewSystemUser(user),
	})
}

// Delete removes an admin account. An admin can never delete itself, so
// the last acting credential in a session cannot vanish mid-request.
func (h *SystemUserHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, paramUserID)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgInvalidUserID)
	}

	actor, err := auth.SystemUserFrom(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	if actor.ID == id {
		return respondError(c, http.StatusForbidden, msgCannotDeleteSelf)
	}

	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return respondRepoError(c, err, msgUserNotFound, msgDeleteUserFail)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		jsonKeyMessage: msgUserDeleted,
	})
}
