package postgres

import (
	"context"
	"fmt"

	"teesheet-service/internal/domain/checkin"
)

type CheckInOrderRepository struct {
	db *DB
}

func NewCheckInOrderRepository(db *DB) *CheckInOrderRepository {
	return &CheckInOrderRepository{db: db}
}

// List returns check-in orders for a course, newest first. The date
// filter matches the order's creation day.
func (r *CheckInOrderRepository) List(ctx context.Context, filter checkin.ListFilter) ([]*checkin.Order, error) {
	query := `
		SELECT id, golf_course_id, customer_name, payment_status, total, created_at, updated_at
		FROM checkin_orders
		WHERE golf_course_id = $1
	`
	args := []interface{}{filter.GolfCourseID}

	if filter.Date != nil {
		args = append(args, *filter.Date)
		n := len(args)
		query += fmt.Sprintf(" AND created_at >= date_trunc('day', $%d::timestamptz) AND created_at < date_trunc('day', $%d::timestamptz) + INTERVAL '1 day'", n, n)
	}

	if filter.PaymentStatus != "" {
		args = append(args, string(filter.PaymentStatus))
		query += fmt.Sprintf(" AND payment_status = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errQueryFailed("checkin orders", err)
	}
	defer rows.Close()

	var orders []*checkin.Order
	index := make(map[int64]*checkin.Order)
	for rows.Next() {
		o := &checkin.Order{}
		if err := rows.Scan(&o.ID, &o.GolfCourseID, &o.CustomerName, &o.PaymentStatus, &o.Total, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, errScanFailed("checkin order", err)
		}
		orders = append(orders, o)
		index[o.ID] = o
	}
	if err := rows.Err(); err != nil {
		return nil, errIterateFailed("checkin order", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	detailQuery := `
		SELECT id, order_id, tee_time, players, price
		FROM checkin_order_details
		WHERE order_id = ANY($1)
		ORDER BY tee_time ASC
	`

	detailRows, err := r.db.Pool.Query(ctx, detailQuery, ids)
	if err != nil {
		return nil, errQueryFailed("checkin order details", err)
	}
	defer detailRows.Close()

	for detailRows.Next() {
		d := checkin.Detail{}
		if err := detailRows.Scan(&d.ID, &d.OrderID, &d.TeeTime, &d.Players, &d.Price); err != nil {
			return nil, errScanFailed("checkin order detail", err)
		}
		if o, ok := index[d.OrderID]; ok {
			o.Details = append(o.Details, d)
		}
	}
	if err := detailRows.Err(); err != nil {
		return nil, errIterateFailed("checkin order detail", err)
	}

	return orders, nil
}
