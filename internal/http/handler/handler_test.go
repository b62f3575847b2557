package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"teesheet-service/internal/auth"
	"teesheet-service/internal/domain/course"
	"teesheet-service/internal/domain/courseuser"
	"teesheet-service/internal/domain/systemuser"
	apperrors "teesheet-service/pkg/errors"
	"teesheet-service/pkg/password"

	"github.com/labstack/echo/v4"
)

const testSecret = "test-secret-which-is-long-enough-0123456789"

func newTestTokenService() *auth.TokenService {
	return auth.NewTokenService(testSecret, 24*time.Hour, 7*24*time.Hour)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	hash, err := password.Hash(plain)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

// newJSONContext builds an echo context carrying a JSON body.
func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type fakeSystemUserRepo struct {
	users  map[int64]*systemuser.User
	nextID int64
	err    error
}

func newFakeSystemUserRepo() *fakeSystemUserRepo {
	return &fakeSystemUserRepo{users: make(map[int64]*systemuser.User), nextID: 1}
}

func (r *fakeSystemUserRepo) add(u *systemuser.User) *systemuser.User {
	if u.ID == 0 {
		u.ID = r.nextID
		r.nextID++
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeSystemUserRepo) Create(ctx context.Context, input systemuser.CreateUserInput, passwordHash string) (*systemuser.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Name == input.Name {
			return nil, apperrors.Conflict("system user name already exists")
		}
	}
	role := input.Role
	if role == "" {
		role = systemuser.DefaultRole
	}
	return r.add(&systemuser.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	}), nil
}

func (r *fakeSystemUserRepo) FindByID(ctx context.Context, id int64) (*systemuser.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.NotFound("system user not found")
	}
	return u, nil
}

func (r *fakeSystemUserRepo) FindByName(ctx context.Context, name string) (*systemuser.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("system user not found")
}

func (r *fakeSystemUserRepo) List(ctx context.Context) ([]*systemuser.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*systemuser.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeSystemUserRepo) Update(ctx context.Context, id int64, input systemuser.UpdateUserInput) (*systemuser.User, error) {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Name = input.Name
	u.Email = input.Email
	u.Role = input.Role
	u.IsActive = input.IsActive
	if input.PasswordHash != nil {
		u.PasswordHash = *input.PasswordHash
	}
	return u, nil
}

func (r *fakeSystemUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.NotFound("system user not found")
	}
	delete(r.users, id)
	return nil
}

type fakeCourseUserRepo struct {
	users  map[int64]*courseuser.User
	nextID int64
	err    error
}

func newFakeCourseUserRepo() *fakeCourseUserRepo {
	return &fakeCourseUserRepo{users: make(map[int64]*courseuser.User), nextID: 1}
}

func (r *fakeCourseUserRepo) add(u *courseuser.User) *courseuser.User {
	if u.ID == 0 {
		u.ID = r.nextID
		r.nextID++
	}
	r.users[u.ID] = u
	return u
}

func (r *fakeCourseUserRepo) Create(ctx context.Context, input courseuser.CreateUserInput, passwordHash string) (*courseuser.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.GolfCourseID == input.GolfCourseID && u.Username == input.Username {
			return nil, apperrors.Conflict("username already exists for this golf course")
		}
	}
	return r.add(&courseuser.User{
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: passwordHash,
		Role:         input.Role,
		IsActive:     true,
		GolfCourseID: input.GolfCourseID,
	}), nil
}

func (r *fakeCourseUserRepo) FindByID(ctx context.Context, id int64) (*courseuser.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.NotFound("course user not found")
	}
	return u, nil
}

func (r *fakeCourseUserRepo) FindByUsername(ctx context.Context, golfCourseID int64, username string) (*courseuser.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.GolfCourseID == golfCourseID && u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.NotFound("course user not found")
}

func (r *fakeCourseUserRepo) FindByCourseAndID(ctx context.Context, golfCourseID, id int64) (*courseuser.User, error) {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.GolfCourseID != golfCourseID {
		return nil, apperrors.NotFound("course user not found")
	}
	return u, nil
}

func (r *fakeCourseUserRepo) ListByCourse(ctx context.Context, golfCourseID int64) ([]*courseuser.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*courseuser.User
	for _, u := range r.users {
		if u.GolfCourseID == golfCourseID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeCourseUserRepo) ListAll(ctx context.Context) ([]*courseuser.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*courseuser.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeCourseUserRepo) Update(ctx context.Context, id int64, input courseuser.UpdateUserInput) (*courseuser.User, error) {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Username != nil {
		u.Username = *input.Username
	}
	if input.Email != nil {
		u.Email = *input.Email
	}
	if input.FirstName != nil {
		u.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		u.LastName = *input.LastName
	}
	if input.PasswordHash != nil {
		u.PasswordHash = *input.PasswordHash
	}
	if input.Role != nil {
		u.Role = *input.Role
	}
	if input.IsActive != nil {
		u.IsActive = *input.IsActive
	}
	return u, nil
}

func (r *fakeCourseUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.NotFound("course user not found")
	}
	delete(r.users, id)
	return nil
}

type fakeGolfCourseRepo struct {
	courses map[int64]*course.GolfCourse
	nextID  int64
	err     error
}

func newFakeGolfCourseRepo() *fakeGolfCourseRepo {
	return &fakeGolfCourseRepo{courses: make(map[int64]*course.GolfCourse), nextID: 1}
}

func (r *fakeGolfCourseRepo) add(gc *course.GolfCourse) *course.GolfCourse {
	if gc.ID == 0 {
		gc.ID = r.nextID
		r.nextID++
	}
	r.courses[gc.ID] = gc
	return gc
}

func (r *fakeGolfCourseRepo) Create(ctx context.Context, input course.CreateCourseInput) (*course.GolfCourse, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.add(&course.GolfCourse{
		Name:             input.Name,
		Address:          input.Address,
		City:             input.City,
		State:            input.State,
		Zip:              input.Zip,
		Phone:            input.Phone,
		Website:          input.Website,
		TaxRate:          input.TaxRate,
		DiscountRate:     input.DiscountRate,
		LeadDiscountRate: input.LeadDiscountRate,
	}), nil
}

func (r *fakeGolfCourseRepo) FindByID(ctx context.Context, id int64) (*course.GolfCourse, error) {
	if r.err != nil {
		return nil, r.err
	}
	gc, ok := r.courses[id]
	if !ok {
		return nil, apperrors.NotFound("golf course not found")
	}
	return gc, nil
}

func (r *fakeGolfCourseRepo) FindByIDWithCounts(ctx context.Context, id int64) (*course.WithCounts, error) {
	gc, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &course.WithCounts{GolfCourse: *gc}, nil
}

func (r *fakeGolfCourseRepo) ListWithCounts(ctx context.Context) ([]*course.WithCounts, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*course.WithCounts, 0, len(r.courses))
	for _, gc := range r.courses {
		out = append(out, &course.WithCounts{GolfCourse: *gc})
	}
	return out, nil
}

func (r *fakeGolfCourseRepo) Update(ctx context.Context, id int64, input course.UpdateCourseInput) (*course.GolfCourse, error) {
	gc, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	gc.Name = input.Name
	gc.Address = input.Address
	gc.City = input.City
	gc.State = input.State
	gc.Zip = input.Zip
	gc.Phone = input.Phone
	gc.Website = input.Website
	gc.TaxRate = input.TaxRate
	gc.DiscountRate = input.DiscountRate
	gc.LeadDiscountRate = input.LeadDiscountRate
	return gc, nil
}

func (r *fakeGolfCourseRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.courses[id]; !ok {
		return apperrors.NotFound("golf course not found")
	}
	delete(r.courses, id)
	return nil
}
