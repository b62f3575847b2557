package booking

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// Booking is a reservation for one or more tee times at a course.
type Booking struct {
	ID           int64
	GolfCourseID int64
	CustomerName string
	Status       Status
	Details      []Detail
	Payments     []Payment
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Detail is a single tee-time line within a booking.
type Detail struct {
	ID        int64
	BookingID int64
	TeeTime   time.Time
	Players   int
	Holes     int
}

type Payment struct {
	ID        int64
	BookingID int64
	Amount    float64
	Method    string
	PaidAt    *time.Time
}

// ListFilter narrows booking queries. Zero values mean "no filter".
// Date filters to bookings with a tee time on that calendar day.
type ListFilter struct {
	GolfCourseID int64
	Date         *time.Time
	Status       Status
}
