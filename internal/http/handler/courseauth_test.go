package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"teesheet-service/internal/auth"
	"teesheet-service/internal/domain/course"
	"teesheet-service/internal/domain/courseuser"
	"teesheet-service/internal/rbac"
	"teesheet-service/internal/rbac/presets"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func seedCourseLogin(t *testing.T) (*fakeCourseUserRepo, *fakeGolfCourseRepo, *courseuser.User) {
	t.Helper()
	users := newFakeCourseUserRepo()
	courses := newFakeGolfCourseRepo()
	courses.add(&course.GolfCourse{ID: 3, Name: "Pine Hollow"})
	staff := users.add(&courseuser.User{
		Username:     "pro",
		PasswordHash: mustHash(t, "correct horse"),
		Role:         string(presets.RoleManager),
		IsActive:     true,
		GolfCourseID: 3,
	})
	return users, courses, staff
}

func TestCourseLoginSuccess(t *testing.T) {
	e := echo.New()
	users, courses, staff := seedCourseLogin(t)
	tokens := newTestTokenService()
	h := NewCourseAuthHandler(users, courses, tokens)

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"username":"pro","password":"correct horse"}`)
	c.SetParamNames("course_id")
	c.SetParamValues("3")

	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                `json:"success"`
		Token   string              `json:"token"`
		User    courseUserLoginView `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, staff.ID, resp.User.ID)
	assert.Equal(t, "Pine Hollow", resp.User.GolfCourse.Name)

	// The role claim records the tenant binding
	claims, err := tokens.Verify(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, "MANAGER:3", claims.Role)
}

func TestCourseLoginUnknownCourseIs404(t *testing.T) {
	e := echo.New()
	users, courses, _ := seedCourseLogin(t)
	h := NewCourseAuthHandler(users, courses, newTestTokenService())

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"username":"pro","password":"correct horse"}`)
	c.SetParamNames("course_id")
	c.SetParamValues("99")

	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCourseLoginBadCredentialsUniform(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"username":"pro","password":"wrong"}`},
		{"unknown username", `{"username":"ghost","password":"correct horse"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			users, courses, _ := seedCourseLogin(t)
			h := NewCourseAuthHandler(users, courses, newTestTokenService())

			c, rec := newJSONContext(e, http.MethodPost, "/", tt.body)
			c.SetParamNames("course_id")
			c.SetParamValues("3")

			assert.NoError(t, h.Login(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), msgInvalidCredentials)
		})
	}
}

func TestCourseLoginDeactivatedStaffDenied(t *testing.T) {
	e := echo.New()
	users, courses, staff := seedCourseLogin(t)
	staff.IsActive = false
	h := NewCourseAuthHandler(users, courses, newTestTokenService())

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"username":"pro","password":"correct horse"}`)
	c.SetParamNames("course_id")
	c.SetParamValues("3")

	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// newCourseAuthChain builds the tenant-checking middleware chain around a
// handler, mirroring the server's course-scoped group.
func newCourseAuthChain(users *fakeCourseUserRepo, tokens *auth.TokenService, next echo.HandlerFunc) echo.HandlerFunc {
	courseResolver := auth.NewCourseResolver(tokens, users)
	mw := auth.NewMiddleware(nil, courseResolver, rbac.MustNew(presets.CourseStaff()))
	return mw.RequireCourse()(next)
}

func TestCourseTokenDeniedOnOtherCoursesScope(t *testing.T) {
	e := echo.New()
	users, _, staff := seedCourseLogin(t)
	tokens := newTestTokenService()

	token, err := tokens.GenerateCourseToken(staff.ID, staff.Username, staff.Role, staff.GolfCourseID)
	assert.NoError(t, err)

	settings := NewSettingsHandler(newFakeGolfCourseRepo())
	chain := newCourseAuthChain(users, tokens, settings.Get)

	// Same token, wrong course scope
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("course_id")
	c.SetParamValues("9")

	assert.NoError(t, chain(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCourseScopeRejectsNonPositiveCourseID(t *testing.T) {
	e := echo.New()
	users, _, staff := seedCourseLogin(t)
	tokens := newTestTokenService()

	token, err := tokens.GenerateCourseToken(staff.ID, staff.Username, staff.Role, staff.GolfCourseID)
	assert.NoError(t, err)

	settings := NewSettingsHandler(newFakeGolfCourseRepo())
	chain := newCourseAuthChain(users, tokens, settings.Get)

	// A valid token must not open a scope no course can own.
	for _, courseID := range []string{"0", "-3", "abc"} {
		t.Run(courseID, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.SetParamNames("course_id")
			c.SetParamValues(courseID)

			assert.NoError(t, chain(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSettingsRoleGate(t *testing.T) {
	e := echo.New()
	users, courses, staff := seedCourseLogin(t)
	tokens := newTestTokenService()

	clerk := users.add(&courseuser.User{
		Username:     "clerk",
		PasswordHash: "x",
		Role:         string(presets.RoleStaff),
		IsActive:     true,
		GolfCourseID: 3,
	})

	settings := NewSettingsHandler(courses)
	courseResolver := auth.NewCourseResolver(tokens, users)
	mw := auth.NewMiddleware(nil, courseResolver, rbac.MustNew(presets.CourseStaff()))
	chain := mw.RequireCourse()(mw.RequireCourseRole(presets.RoleManager)(settings.Update))

	run := func(u *courseuser.User, body string) *httptest.ResponseRecorder {
		token, err := tokens.GenerateCourseToken(u.ID, u.Username, u.Role, u.GolfCourseID)
		assert.NoError(t, err)

		c, rec := newJSONContext(e, http.MethodPut, "/", body)
		c.Request().Header.Set("Authorization", "Bearer "+token)
		c.SetParamNames("course_id")
		c.SetParamValues("3")
		assert.NoError(t, chain(c))
		return rec
	}

	body := `{"name":"Pine Hollow","tax_rate":0.07}`

	// STAFF may not write settings
	rec := run(clerk, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// MANAGER may
	rec = run(staff, body)
	assert.Equal(t, http.StatusOK, rec.Code)
}
