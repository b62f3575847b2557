package course

import "time"

// GolfCourse is the tenant boundary: every staff account, booking, and
// device belongs to exactly one course.
type GolfCourse struct {
	ID               int64
	Name             string
	Address          string
	City             string
	State            string
	Zip              string
	Phone            string
	Website          string
	TaxRate          float64
	DiscountRate     float64
	LeadDiscountRate float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Counts carries the aggregate numbers shown on the admin dashboard.
type Counts struct {
	Users     int64
	Customers int64
	Bookings  int64
}

// WithCounts pairs a course with its aggregates for listing endpoints.
type WithCounts struct {
	GolfCourse
	Counts Counts
}

type CreateCourseInput struct {
	Name             string
	Address          string
	City             string
	State            string
	Zip              string
	Phone            string
	Website          string
	TaxRate          float64
	DiscountRate     float64
	LeadDiscountRate float64
}

type UpdateCourseInput struct {
	Name             string
	Address          string
	City             string
	State            string
	Zip              string
	Phone            string
	Website          string
	TaxRate          float64
	DiscountRate     float64
	LeadDiscountRate float64
}
