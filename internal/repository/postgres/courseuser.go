package postgres

import (
	"context"
	"errors"
	"fmt"

	"teesheet-service/internal/domain/courseuser"
	apperrors "teesheet-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

const courseUserColumns = "id, username, email, first_name, last_name, password_hash, role, is_active, golf_course_id, created_at, updated_at"

type CourseUserRepository struct {
	db *DB
}

func NewCourseUserRepository(db *DB) *CourseUserRepository {
	return &CourseUserRepository{db: db}
}

func scanCourseUser(row pgx.Row) (*courseuser.User, error) {
	u := &courseuser.User{}
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		&u.GolfCourseID,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *CourseUserRepository) Create(ctx context.Context, input courseuser.CreateUserInput, passwordHash string) (*courseuser.User, error) {
	query := `
		INSERT INTO course_users (username, email, first_name, last_name, password_hash, role, golf_course_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + courseUserColumns

	u, err := scanCourseUser(r.db.Pool.QueryRow(ctx, query,
		input.Username, input.Email, input.FirstName, input.LastName,
		passwordHash, input.Role, input.GolfCourseID,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict(errCourseUsernameExists)
		}
		return nil, errMutationFailed("create", "course user", err)
	}

	return u, nil
}

func (r *CourseUserRepository) FindByID(ctx context.Context, id int64) (*courseuser.User, error) {
	query := `SELECT ` + courseUserColumns + ` FROM course_users WHERE id = $1`

	u, err := scanCourseUser(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errCourseUserNotFound)
		}
		return nil, errQueryFailed("course user", err)
	}

	return u, nil
}

func (r *CourseUserRepository) FindByUsername(ctx context.Context, golfCourseID int64, username string) (*courseuser.User, error) {
	query := `SELECT ` + courseUserColumns + ` FROM course_users WHERE golf_course_id = $1 AND username = $2`

	u, err := scanCourseUser(r.db.Pool.QueryRow(ctx, query, golfCourseID, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errCourseUserNotFound)
		}
		return nil, errQueryFailed("course user", err)
	}

	return u, nil
}

func (r *CourseUserRepository) FindByCourseAndID(ctx context.Context, golfCourseID, id int64) (*courseuser.User, error) {
	query := `SELECT ` + courseUserColumns + ` FROM course_users WHERE golf_course_id = $1 AND id = $2`

	u, err := scanCourseUser(r.db.Pool.QueryRow(ctx, query, golfCourseID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errCourseUserNotFound)
		}
		return nil, errQueryFailed("course user", err)
	}

	return u, nil
}

func (r *CourseUserRepository) ListByCourse(ctx context.Context, golfCourseID int64) ([]*courseuser.User, error) {
	query := `SELECT ` + courseUserColumns + ` FROM course_users WHERE golf_course_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Pool.Query(ctx, query, golfCourseID)
	if err != nil {
		return nil, errQueryFailed("course users", err)
	}
	defer rows.Close()

	return collectCourseUsers(rows)
}

func (r *CourseUserRepository) ListAll(ctx context.Context) ([]*courseuser.User, error) {
	query := `SELECT ` + courseUserColumns + ` FROM course_users ORDER BY golf_course_id, created_at DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, errQueryFailed("course users", err)
	}
	defer rows.Close()

	return collectCourseUsers(rows)
}

func collectCourseUsers(rows pgx.Rows) ([]*courseuser.User, error) {
	var users []*courseuser.User
	for rows.Next() {
		u, err := scanCourseUser(rows)
		if err != nil {
			return nil, errScanFailed("course user", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, errIterateFailed("course user", err)
	}

	return users, nil
}

func (r *CourseUserRepository) Update(ctx context.Context, id int64, input courseuser.UpdateUserInput) (*courseuser.User, error) {
	query := "UPDATE course_users SET updated_at = NOW()"
	args := []interface{}{id}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		query += fmt.Sprintf(", %s = $%d", column, len(args))
	}

	if input.Username != nil {
		appendSet("username", *input.Username)
	}
	if input.Email != nil {
		appendSet("email", *input.Email)
	}
	if input.FirstName != nil {
		appendSet("first_name", *input.FirstName)
	}
	if input.LastName != nil {
		appendSet("last_name", *input.LastName)
	}
	if input.PasswordHash != nil {
		appendSet("password_hash", *input.PasswordHash)
	}
	if input.Role != nil {
		appendSet("role", *input.Role)
	}
	if input.IsActive != nil {
		appendSet("is_active", *input.IsActive)
	}

	query += " WHERE id = $1 RETURNING " + courseUserColumns

	u, err := scanCourseUser(r.db.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errCourseUserNotFound)
		}
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict(errCourseUsernameExists)
		}
		return nil, errMutationFailed("update", "course user", err)
	}

	return u, nil
}

func (r *CourseUserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Pool.Exec(ctx, "DELETE FROM course_users WHERE id = $1", id)
	if err != nil {
		return errMutationFailed("delete", "course user", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errCourseUserNotFound)
	}

	return nil
}
