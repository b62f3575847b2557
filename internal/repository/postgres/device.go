package postgres

import (
	"context"
	"errors"
	"fmt"

	"teesheet-service/internal/domain/device"
	apperrors "teesheet-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

const deviceColumns = "id, name, device_type, hardware_id, is_active, golf_course_id, created_at, updated_at"

type DeviceRepository struct {
	db *DB
}

func NewDeviceRepository(db *DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

func scanDevice(row pgx.Row) (*device.Device, error) {
	d := &device.Device{}
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.DeviceType,
		&d.HardwareID,
		&d.IsActive,
		&d.GolfCourseID,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *DeviceRepository) Create(ctx context.Context, input device.CreateDeviceInput) (*device.Device, error) {
	query := `
		INSERT INTO devices (name, device_type, hardware_id, is_active, golf_course_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + deviceColumns

	d, err := scanDevice(r.db.Pool.QueryRow(ctx, query,
		input.Name, input.DeviceType, input.HardwareID, input.IsActive, input.GolfCourseID,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict(errDeviceHardwareExists)
		}
		return nil, errMutationFailed("create", "device", err)
	}

	return d, nil
}

func (r *DeviceRepository) FindByID(ctx context.Context, id int64) (*device.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`

	d, err := scanDevice(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errDeviceNotFound)
		}
		return nil, errQueryFailed("device", err)
	}

	return d, nil
}

func (r *DeviceRepository) FindByHardwareID(ctx context.Context, hardwareID string) (*device.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE hardware_id = $1`

	d, err := scanDevice(r.db.Pool.QueryRow(ctx, query, hardwareID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errDeviceNotFound)
		}
		return nil, errQueryFailed("device", err)
	}

	return d, nil
}

func (r *DeviceRepository) List(ctx context.Context) ([]*device.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices ORDER BY created_at DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, errQueryFailed("devices", err)
	}
	defer rows.Close()

	var devices []*device.Device
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, errScanFailed("device", err)
		}
		devices = append(devices, d)
	}

	if err := rows.Err(); err != nil {
		return nil, errIterateFailed("device", err)
	}

	return devices, nil
}

func (r *DeviceRepository) Update(ctx context.Context, id int64, input device.UpdateDeviceInput) (*device.Device, error) {
	query := "UPDATE devices SET updated_at = NOW()"
	args := []interface{}{id}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		query += fmt.Sprintf(", %s = $%d", column, len(args))
	}

	if input.Name != nil {
		appendSet("name", *input.Name)
	}
	if input.DeviceType != nil {
		appendSet("device_type", *input.DeviceType)
	}
	if input.HardwareID != nil {
		appendSet("hardware_id", *input.HardwareID)
	}
	if input.IsActive != nil {
		appendSet("is_active", *input.IsActive)
	}
	if input.GolfCourseID != nil {
		appendSet("golf_course_id", *input.GolfCourseID)
	}

	query += " WHERE id = $1 RETURNING " + deviceColumns

	d, err := scanDevice(r.db.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errDeviceNotFound)
		}
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict(errDeviceHardwareExists)
		}
		return nil, errMutationFailed("update", "device", err)
	}

	return d, nil
}

func (r *DeviceRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Pool.Exec(ctx, "DELETE FROM devices WHERE id = $1", id)
	if err != nil {
		return errMutationFailed("delete", "device", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errDeviceNotFound)
	}

	return nil
}
