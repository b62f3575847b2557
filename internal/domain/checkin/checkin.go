package checkin

import "time"

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentWaived  PaymentStatus = "WAIVED"
)

// Order is a walk-up or kiosk check-in recorded at the course.
type Order struct {
	ID            int64
	GolfCourseID  int64
	CustomerName  string
	PaymentStatus PaymentStatus
	Total         float64
	Details       []Detail
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Detail struct {
	ID      int64
	OrderID int64
	TeeTime time.Time
	Players int
	Price   float64
}

// ListFilter narrows order queries; Date filters on the order's creation day.
type ListFilter struct {
	GolfCourseID  int64
	Date          *time.Time
	PaymentStatus PaymentStatus
}
