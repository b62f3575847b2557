package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"teesheet-service/internal/auth"
	"teesheet-service/internal/domain/courseuser"
	"teesheet-service/internal/domain/systemuser"
	"teesheet-service/internal/rbac"
	"teesheet-service/internal/rbac/presets"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newStaffHandler() (*StaffHandler, *fakeCourseUserRepo) {
	repo := newFakeCourseUserRepo()
	return NewStaffHandler(repo, rbac.MustNew(presets.CourseStaff())), repo
}

func withCourseActor(c echo.Context, actor *courseuser.User) {
	c.Set(auth.ContextKeyCourseUser, actor)
}

func TestStaffUpdateSelfForbidden(t *testing.T) {
	e := echo.New()
	h, repo := newStaffHandler()
	owner := repo.add(&courseuser.User{
		Username: "owner", PasswordHash: "x",
		Role: string(presets.RoleOwner), IsActive: true, GolfCourseID: 3,
	})

	c, rec := newJSONContext(e, http.MethodPut, "/", `{"first_name":"New"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	withCourseActor(c, owner)

	assert.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), msgCannotManageUser)
}

func TestStaffDeleteSelfForbidden(t *testing.T) {
	e := echo.New()
	h, repo := newStaffHandler()
	owner := repo.add(&courseuser.User{
		Username: "owner", PasswordHash: "x",
		Role: string(presets.RoleOwner), IsActive: true, GolfCourseID: 3,
	})

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	withCourseActor(c, owner)

	assert.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	// Self stays in the store
	_, err := repo.FindByID(c.Request().Context(), owner.ID)
	assert.NoError(t, err)
}

func TestStaffManagerCannotTouchOwner(t *testing.T) {
	e := echo.New()
	h, repo := newStaffHandler()
	manager := repo.add(&courseuser.User{
		Username: "manager", PasswordHash: "x",
		Role: string(presets.RoleManager), IsActive: true, GolfCourseID: 3,
	})
	repo.add(&courseuser.User{
		Username: "owner", PasswordHash: "x",
		Role: string(presets.RoleOwner), IsActive: true, GolfCourseID: 3,
	})

	c, rec := newJSONContext(e, http.MethodPut, "/", `{"is_active":false}`)
	c.SetParamNames("id")
	c.SetParamValues("2")
	withCourseActor(c, manager)

	assert.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestStaffManagerManagesStaff(t *testing.T) {
	e := echo.New()
	h, repo := newStaffHandler()
	manager := repo.add(&courseuser.User{
		Username: "manager", PasswordHash: "x",
		Role: string(presets.RoleManager), IsActive: true, GolfCourseID: 3,
	})
	clerk := repo.add(&courseuser.User{
		Username: "clerk", PasswordHash: "x",
		Role: string(presets.RoleStaff), IsActive: true, GolfCourseID: 3,
	})

	c, rec := newJSONContext(e, http.MethodPut, "/", `{"is_active":false}`)
	c.SetParamNames("id")
	c.SetParamValues("2")
	withCourseActor(c, manager)

	assert.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, clerk.IsActive)
}

func TestStaffCannotPromoteAboveActor(t *testing.T) {
	e := echo.New()
	h, repo := newStaffHandler()
	manager := repo.add(&courseuser.User{
		Username: "manager", PasswordHash: "x",
		Role: string(presets.RoleManager), IsActive: true, GolfCourseID: 3,
	})
	repo.add(&courseuser.User{
		Username: "clerk", PasswordHash: "x",
		Role: string(presets.RoleStaff), IsActive: true, GolfCourseID: 3,
	})

	c, rec := newJSONContext(e, http.MethodPut, "/", `{"role":"OWNER"}`)
	c.SetParamNames("id")
	c.SetParamValues("2")
	withCourseActor(c, manager)

	assert.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestStaffUpdateOutsideCourseNotFound(t *testing.T) {
	e := echo.New()
	h, repo := newStaffHandler()
	manager := repo.add(&courseuser.User{
		Username: "manager", PasswordHash: "x",
		Role: string(presets.RoleManager), IsActive: true, GolfCourseID: 3,
	})
	repo.add(&courseuser.User{
		Username: "other", PasswordHash: "x",
		Role: string(presets.RoleStaff), IsActive: true, GolfCourseID: 9,
	})

	c, rec := newJSONContext(e, http.MethodPut, "/", `{"is_active":false}`)
	c.SetParamNames("id")
	c.SetParamValues("2")
	withCourseActor(c, manager)

	assert.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaffCreateInvalidRoleRejected(t *testing.T) {
	e := echo.New()
	h, repo := newStaffHandler()
	owner := repo.add(&courseuser.User{
		Username: "owner", PasswordHash: "x",
		Role: string(presets.RoleOwner), IsActive: true, GolfCourseID: 3,
	})

	c, rec := newJSONContext(e, http.MethodPost, "/", `{"username":"new","password":"pw123456","role":"SUPERUSER"}`)
	withCourseActor(c, owner)

	assert.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidRole)
}

func TestSystemUserSelfDeleteForbidden(t *testing.T) {
	e := echo.New()
	repo := newFakeSystemUserRepo()
	actor := repo.add(&systemuser.User{Name: "admin", PasswordHash: "x", IsActive: true})
	other := repo.add(&systemuser.User{Name: "colleague", PasswordHash: "x", IsActive: true})
	h := NewSystemUserHandler(repo)

	del := func(id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)
		c.Set(auth.ContextKeySystemUser, actor)
		assert.NoError(t, h.Delete(c))
		return rec
	}

	rec := del("1")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), msgCannotDeleteSelf)

	rec = del("2")
	assert.Equal(t, http.StatusOK, rec.Code)
	_, err := repo.FindByID(context.Background(), other.ID)
	assert.Error(t, err)
}
