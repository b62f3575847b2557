package handler

import (
	"time"

	"teesheet-service/internal/domain/booking"
	"teesheet-service/internal/domain/checkin"
	"teesheet-service/internal/domain/course"
	"teesheet-service/internal/domain/courseuser"
	"teesheet-service/internal/domain/device"
	"teesheet-service/internal/domain/systemuser"
	"teesheet-service/internal/domain/teetime"
)

// View types decouple wire JSON from domain structs. Password hashes
// never appear in any view.

type systemUserView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func viewSystemUser(u *systemuser.User) systemUserView {
	return systemUserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func viewSystemUsers(users []*systemuser.User) []systemUserView {
	out := make([]systemUserView, 0, len(users))
	for _, u := range users {
		out = append(out, viewSystemUser(u))
	}
	return out
}

type courseUserView struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	GolfCourseID int64     `json:"golf_course_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func viewCourseUser(u *courseuser.User) courseUserView {
	return courseUserView{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         u.Role,
		IsActive:     u.IsActive,
		GolfCourseID: u.GolfCourseID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func viewCourseUsers(users []*courseuser.User) []courseUserView {
	out := make([]courseUserView, 0, len(users))
	for _, u := range users {
		out = append(out, viewCourseUser(u))
	}
	return out
}

// courseRefView is the short tenant reference embedded in login responses.
type courseRefView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// courseUserLoginView is the staff account shape returned by course login,
// with the owning course embedded.
type courseUserLoginView struct {
	courseUserView
	GolfCourse courseRefView `json:"golfCourse"`
}

func viewCourseUserWithCourse(u *courseuser.User, gc *course.GolfCourse) courseUserLoginView {
	return courseUserLoginView{
		courseUserView: viewCourseUser(u),
		GolfCourse:     courseRefView{ID: gc.ID, Name: gc.Name},
	}
}

type golfCourseView struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	City             string    `json:"city"`
	State            string    `json:"state"`
	Zip              string    `json:"zip"`
	Phone            string    `json:"phone"`
	Website          string    `json:"website"`
	TaxRate          float64   `json:"tax_rate"`
	DiscountRate     float64   `json:"discount_rate"`
	LeadDiscountRate float64   `json:"lead_discount_rate"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type golfCourseCountsView struct {
	golfCourseView
	UserCount     int64 `json:"user_count"`
	CustomerCount int64 `json:"customer_count"`
	BookingCount  int64 `json:"booking_count"`
}

func viewGolfCourse(gc *course.GolfCourse) golfCourseView {
	return golfCourseView{
		ID:               gc.ID,
		Name:             gc.Name,
		Address:          gc.Address,
		City:             gc.City,
		State:            gc.State,
		Zip:              gc.Zip,
		Phone:            gc.Phone,
		Website:          gc.Website,
		TaxRate:          gc.TaxRate,
		DiscountRate:     gc.DiscountRate,
		LeadDiscountRate: gc.LeadDiscountRate,
		CreatedAt:        gc.CreatedAt,
		UpdatedAt:        gc.UpdatedAt,
	}
}

func viewGolfCourseWithCounts(gc *course.WithCounts) golfCourseCountsView {
	return golfCourseCountsView{
		golfCourseView: viewGolfCourse(&gc.GolfCourse),
		UserCount:      gc.Counts.Users,
		CustomerCount:  gc.Counts.Customers,
		BookingCount:   gc.Counts.Bookings,
	}
}

type deviceView struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DeviceType   string    `json:"device_type"`
	HardwareID   string    `json:"hardware_id"`
	IsActive     bool      `json:"is_active"`
	GolfCourseID int64     `json:"golf_course_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func viewDevice(d *device.Device) deviceView {
	return deviceView{
		ID:           d.ID,
		Name:         d.Name,
		DeviceType:   d.DeviceType,
		HardwareID:   d.HardwareID,
		IsActive:     d.IsActive,
		GolfCourseID: d.GolfCourseID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type bookingDetailView struct {
	ID      int64     `json:"id"`
	TeeTime time.Time `json:"tee_time"`
	Players int       `json:"players"`
	Holes   int       `json:"holes"`
}

type bookingPaymentView struct {
	ID     int64      `json:"id"`
	Amount float64    `json:"amount"`
	Method string     `json:"method"`
	PaidAt *time.Time `json:"paid_at"`
}

type bookingView struct {
	ID           int64                `json:"id"`
	GolfCourseID int64                `json:"golf_course_id"`
	CustomerName string               `json:"customer_name"`
	Status       string               `json:"status"`
	Details      []bookingDetailView  `json:"details"`
	Payments     []bookingPaymentView `json:"payments"`
	CreatedAt    time.Time            `json:"created_at"`
}

func viewBooking(b *booking.Booking) bookingView {
	details := make([]bookingDetailView, 0, len(b.Details))
	for _, d := range b.Details {
		details = append(details, bookingDetailView{ID: d.ID, TeeTime: d.TeeTime, Players: d.Players, Holes: d.Holes})
	}
	payments := make([]bookingPaymentView, 0, len(b.Payments))
	for _, p := range b.Payments {
		payments = append(payments, bookingPaymentView{ID: p.ID, Amount: p.Amount, Method: p.Method, PaidAt: p.PaidAt})
	}
	return bookingView{
		ID:           b.ID,
		GolfCourseID: b.GolfCourseID,
		CustomerName: b.CustomerName,
		Status:       string(b.Status),
		Details:      details,
		Payments:     payments,
		CreatedAt:    b.CreatedAt,
	}
}

type checkinDetailView struct {
	ID      int64     `json:"id"`
	TeeTime time.Time `json:"tee_time"`
	Players int       `json:"players"`
	Price   float64   `json:"price"`
}

type checkinOrderView struct {
	ID            int64               `json:"id"`
	GolfCourseID  int64               `json:"golf_course_id"`
	CustomerName  string              `json:"customer_name"`
	PaymentStatus string              `json:"payment_status"`
	Total         float64             `json:"total"`
	Details       []checkinDetailView `json:"details"`
	CreatedAt     time.Time           `json:"created_at"`
}

func viewCheckinOrder(o *checkin.Order) checkinOrderView {
	details := make([]checkinDetailView, 0, len(o.Details))
	for _, d := range o.Details {
		details = append(details, checkinDetailView{ID: d.ID, TeeTime: d.TeeTime, Players: d.Players, Price: d.Price})
	}
	return checkinOrderView{
		ID:            o.ID,
		GolfCourseID:  o.GolfCourseID,
		CustomerName:  o.CustomerName,
		PaymentStatus: string(o.PaymentStatus),
		Total:         o.Total,
		Details:       details,
		CreatedAt:     o.CreatedAt,
	}
}

type teeTimeSlotView struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	TeeTime     string `json:"tee_time"`
	PlayerCount int    `json:"player_count"`
	Notes       string `json:"notes"`
}

func viewTeeTimeSlot(s *teetime.Slot) teeTimeSlotView {
	return teeTimeSlotView{
		ID:          s.ID,
		Date:        s.FormattedDate(),
		TeeTime:     s.FormattedTeeTime(),
		PlayerCount: s.PlayerCount,
		Notes:       s.Notes,
	}
}
