package postgres

import (
	"context"
	"fmt"

	"teesheet-service/internal/domain/teetime"
)

type TeeTimeRepository struct {
	db *DB
}

func NewTeeTimeRepository(db *DB) *TeeTimeRepository {
	return &TeeTimeRepository{db: db}
}

// List returns a course's tee-time sheet ordered by slot time.
func (r *TeeTimeRepository) List(ctx context.Context, filter teetime.ListFilter) ([]*teetime.Slot, error) {
	query := `
		SELECT id, golf_course_id, date, tee_time, player_count, notes, created_at, updated_at
		FROM tee_time_slots
		WHERE golf_course_id = $1
	`
	args := []interface{}{filter.GolfCourseID}

	if filter.Date != nil {
		args = append(args, *filter.Date)
		query += fmt.Sprintf(" AND date = date_trunc('day', $%d::timestamptz)", len(args))
	}

	query += " ORDER BY tee_time ASC"

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errQueryFailed("tee time slots", err)
	}
	defer rows.Close()

	var slots []*teetime.Slot
	for rows.Next() {
		s := &teetime.Slot{}
		if err := rows.Scan(&s.ID, &s.GolfCourseID, &s.Date, &s.TeeTime, &s.PlayerCount, &s.Notes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, errScanFailed("tee time slot", err)
		}
		slots = append(slots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, errIterateFailed("tee time slot", err)
	}

	return slots, nil
}
