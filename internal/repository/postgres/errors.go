package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode
	}
	return false
}

func errFailedParseDatabaseConfig(err error) error {
	return fmt.Errorf("failed to parse database config: %w", err)
}

func errFailedCreateConnectionPool(err error) error {
	return fmt.Errorf("failed to create connection pool: %w", err)
}

func errFailedPingDatabase(err error) error {
	return fmt.Errorf("failed to ping database: %w", err)
}

func errQueryFailed(entity string, err error) error {
	return fmt.Errorf("failed to query %s: %w", entity, err)
}

func errScanFailed(entity string, err error) error {
	return fmt.Errorf("failed to scan %s: %w", entity, err)
}

func errIterateFailed(entity string, err error) error {
	return fmt.Errorf("failed to iterate %s rows: %w", entity, err)
}

func errMutationFailed(action, entity string, err error) error {
	return fmt.Errorf("failed to %s %s: %w", action, entity, err)
}
