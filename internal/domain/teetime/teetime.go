package teetime

import "time"

// Slot is one line of a course's daily tee-time sheet.
type Slot struct {
	ID           int64
	GolfCourseID int64
	Date         time.Time
	TeeTime      time.Time
	PlayerCount  int
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FormattedDate renders the sheet date as YYYY-MM-DD.
func (s *Slot) FormattedDate() string {
	return s.Date.Format("2006-01-02")
}

// FormattedTeeTime renders the slot time as HH:MM:SS.
func (s *Slot) FormattedTeeTime() string {
	return s.TeeTime.Format("15:04:05")
}

type ListFilter struct {
	GolfCourseID int64
	Date         *time.Time
}
