package postgres

import (
	"context"
	"fmt"

	"teesheet-service/internal/domain/booking"
)

type BookingRepository struct {
	db *DB
}

func NewBookingRepository(db *DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// List returns bookings for a course, newest first; when a date filter is
// present, results are ordered by their earliest tee time instead.
func (r *BookingRepository) List(ctx context.Context, filter booking.ListFilter) ([]*booking.Booking, error) {
	query := `
		SELECT DISTINCT b.id, b.golf_course_id, b.customer_name, b.status, b.created_at, b.updated_at
		FROM bookings b
	`
	args := []interface{}{filter.GolfCourseID}
	where := " WHERE b.golf_course_id = $1"
	orderBy := " ORDER BY b.created_at DESC"

	if filter.Date != nil {
		args = append(args, *filter.Date)
		n := len(args)
		query += " JOIN booking_details bd ON bd.booking_id = b.id"
		where += fmt.Sprintf(" AND bd.tee_time >= date_trunc('day', $%d::timestamptz) AND bd.tee_time < date_trunc('day', $%d::timestamptz) + INTERVAL '1 day'", n, n)
		orderBy = " ORDER BY b.created_at ASC"
	}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where += fmt.Sprintf(" AND b.status = $%d", len(args))
	}

	rows, err := r.db.Pool.Query(ctx, query+where+orderBy, args...)
	if err != nil {
		return nil, errQueryFailed("bookings", err)
	}
	defer rows.Close()

	var bookings []*booking.Booking
	index := make(map[int64]*booking.Booking)
	for rows.Next() {
		b := &booking.Booking{}
		if err := rows.Scan(&b.ID, &b.GolfCourseID, &b.CustomerName, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, errScanFailed("booking", err)
		}
		bookings = append(bookings, b)
		index[b.ID] = b
	}
	if err := rows.Err(); err != nil {
		return nil, errIterateFailed("booking", err)
	}

	if len(bookings) == 0 {
		return bookings, nil
	}

	if err := r.attachDetails(ctx, index); err != nil {
		return nil, err
	}
	if err := r.attachPayments(ctx, index); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepository) attachDetails(ctx context.Context, index map[int64]*booking.Booking) error {
	ids := bookingIDs(index)
	query := `
		SELECT id, booking_id, tee_time, players, holes
		FROM booking_details
		WHERE booking_id = ANY($1)
		ORDER BY tee_time ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, ids)
	if err != nil {
		return errQueryFailed("booking details", err)
	}
	defer rows.Close()

	for rows.Next() {
		d := booking.Detail{}
		if err := rows.Scan(&d.ID, &d.BookingID, &d.TeeTime, &d.Players, &d.Holes); err != nil {
			return errScanFailed("booking detail", err)
		}
		if b, ok := index[d.BookingID]; ok {
			b.Details = append(b.Details, d)
		}
	}

	return rows.Err()
}

func (r *BookingRepository) attachPayments(ctx context.Context, index map[int64]*booking.Booking) error {
	ids := bookingIDs(index)
	query := `
		SELECT id, booking_id, amount, method, paid_at
		FROM booking_payments
		WHERE booking_id = ANY($1)
	`

	rows, err := r.db.Pool.Query(ctx, query, ids)
	if err != nil {
		return errQueryFailed("booking payments", err)
	}
	defer rows.Close()

	for rows.Next() {
		p := booking.Payment{}
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Amount, &p.Method, &p.PaidAt); err != nil {
			return errScanFailed("booking payment", err)
		}
		if b, ok := index[p.BookingID]; ok {
			b.Payments = append(b.Payments, p)
		}
	}

	return rows.Err()
}

func bookingIDs(index map[int64]*booking.Booking) []int64 {
	ids := make([]int64, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	return ids
}
