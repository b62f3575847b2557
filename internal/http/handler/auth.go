package handler

import (
	"errors"
	"net/http"
	"strings"

	"teesheet-service/internal/auth"
	"teesheet-service/internal/domain/systemuser"
	"teesheet-service/internal/repository"
	apperrors "teesheet-service/pkg/errors"
	"teesheet-service/pkg/password"

	"github.com/labstack/echo/v4"
)

// dummyHash is a real cost-12 bcrypt digest of a random string. Login
// verifies against it when the account lookup misses so that unknown
// and known usernames take the same time.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// AuthHandler serves system-admin authentication.
type AuthHandler struct {
	users  repository.SystemUserRepository
	tokens *auth.TokenService
}

func NewAuthHandler(users repository.SystemUserRepository, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type systemLoginRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// loginName accepts either key; older clients send "name".
func (r systemLoginRequest) loginName() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Name
}

// Login authenticates a system admin and issues a short-lived token.
// Unknown name, wrong password, and deactivated account are
// indistinguishable to the caller.
func (h *AuthHandler) Login(c echo.Context) error {
	var req systemLoginRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	name := strings.TrimSpace(req.loginName())
	if name == "" || req.Password == "" {
		return respondError(c, http.StatusBadRequest, msgCredentialsRequired)
	}

	user, err := h.users.FindByName(c.Request().Context(), name)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			c.Logger().Errorf("auth: lookup failed for login: %v", err)
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

	token, err := h.tokens.GenerateSystemToken(user.ID, user.Name, user.Role)
	if err != nil {
		c.Logger().Errorf("%s: %v", msgGenerateTokenFail, err)
		return respondError(c, http.StatusInternalServerError, msgInternalServerError)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
		"user":    viewSystemUser(user),
	})
}

// Profile returns the authenticated admin's account as the store sees it
// now, not as the token claimed at issue time.
func (h *AuthHandler) Profile(c echo.Context) error {
	user, err := auth.SystemUserFrom(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    viewSystemUser(user),
	})
}

// Logout acknowledges the client discarding its token. Tokens are
// stateless, so there is nothing to revoke server-side; the call is
// idempotent and succeeds without authentication.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":      true,
		jsonKeyMessage: msgLoggedOut,
	})
}

type createSystemUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateUser provisions a new system admin. Requires an authenticated
// system principal.
func (h *AuthHandler) CreateUser(c echo.Context) error {
	var req createSystemUserRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Password == "" {
		return respondError(c, http.StatusBadRequest, msgNameAndPasswordNeeded)
	}

	if req.Role == "" {
		req.Role = systemuser.DefaultRole
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		c.Logger().Errorf("%s: %v", msgPasswordProcessFail, err)
		return respondError(c, http.StatusInternalServerError, msgInternalServerError)
	}

	input := systemuser.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}

	user, err := h.users.Create(c.Request().Context(), input, hash)
	if err != nil {
		return respondRepoError(c, err, msgUserNotFound, msgCreateUserFail)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"user":    viewSystemUser(user),
	})
}
