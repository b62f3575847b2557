package postgres

import (
	"context"
	"errors"
	"fmt"

	"teesheet-service/internal/domain/systemuser"
	apperrors "teesheet-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

const systemUserColumns = "id, name, email, password_hash, role, is_active, created_at, updated_at"

type SystemUserRepository struct {
	db *DB
}

func NewSystemUserRepository(db *DB) *SystemUserRepository {
	return &SystemUserRepository{db: db}
}

func scanSystemUser(row pgx.Row) (*systemuser.User, error) {
	u := &systemuser.User{}
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *SystemUserRepository) Create(ctx context.Context, input systemuser.CreateUserInput, passwordHash string) (*systemuser.User, error) {
	query := `
		INSERT INTO system_users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + systemUserColumns

	role := input.Role
	if role == "" {
		role = systemuser.DefaultRole
	}

	u, err := scanSystemUser(r.db.Pool.QueryRow(ctx, query, input.Name, input.Email, passwordHash, role))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict(errSystemUserNameExists)
		}
		return nil, errMutationFailed("create", "system user", err)
	}

	return u, nil
}

func (r *SystemUserRepository) FindByID(ctx context.Context, id int64) (*systemuser.User, error) {
	query := `SELECT ` + systemUserColumns + ` FROM system_users WHERE id = $1`

	u, err := scanSystemUser(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errSystemUserNotFound)
		}
		return nil, errQueryFailed("system user", err)
	}

	return u, nil
}

func (r *SystemUserRepository) FindByName(ctx context.Context, name string) (*systemuser.User, error) {
	query := `SELECT ` + systemUserColumns + ` FROM system_users WHERE name = $1`

	u, err := scanSystemUser(r.db.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errSystemUserNotFound)
		}
		return nil, errQueryFailed("system user", err)
	}

	return u, nil
}

func (r *SystemUserRepository) List(ctx context.Context) ([]*systemuser.User, error) {
	query := `SELECT ` + systemUserColumns + ` FROM system_users ORDER BY created_at DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, errQueryFailed("system users", err)
	}
	defer rows.Close()

	var users []*systemuser.User
	for rows.Next() {
		u, err := scanSystemUser(rows)
		if err != nil {
			return nil, errScanFailed("system user", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, errIterateFailed("system user", err)
	}

	return users, nil
}

func (r *SystemUserRepository) Update(ctx context.Context, id int64, input systemuser.UpdateUserInput) (*systemuser.User, error) {
	query := "UPDATE system_users SET updated_at = NOW(), name = $2, email = $3, role = $4, is_active = $5"
	args := []interface{}{id, input.Name, input.Email, input.Role, input.IsActive}

	if input.PasswordHash != nil {
		args = append(args, *input.PasswordHash)
		query += fmt.Sprintf(", password_hash = $%d", len(args))
	}

	query += " WHERE id = $1 RETURNING " + systemUserColumns

	u, err := scanSystemUser(r.db.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errSystemUserNotFound)
		}
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict(errSystemUserNameExists)
		}
		return nil, errMutationFailed("update", "system user", err)
	}

	return u, nil
}

func (r *SystemUserRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Pool.Exec(ctx, "DELETE FROM system_users WHERE id = $1", id)
	if err != nil {
		return errMutationFailed("delete", "system user", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errSystemUserNotFound)
	}

	return nil
}
