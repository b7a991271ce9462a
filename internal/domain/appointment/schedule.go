package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// WorkHours is an inclusive [StartTime, EndTime] window in HH:mm.
type WorkHours struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ParseDate validates a calendar day and returns its day of week,
// 0 = Sunday .. 6 = Saturday.
func ParseDate(date string) (time.Weekday, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, httperr.ErrBusiness("invalid_date")
	}
	return d.Weekday(), nil
}

// NormalizeTime accepts H:mm or HH:mm and returns the zero-padded form the
// lexicographic window comparison relies on.
func NormalizeTime(t string) (string, error) {
	parsed, err := time.Parse(TimeLayout, t)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_time")
	}
	return parsed.Format(TimeLayout), nil
}

// WorkHoursOn finds the employee's schedule entry for the weekday of date.
// A nil employee or an unparsable date simply has no hours.
func WorkHoursOn(emp *models.Employee, date string) (WorkHours, bool) {
	if emp == nil {
		return WorkHours{}, false
	}
	weekday, err := ParseDate(date)
	if err != nil {
		return WorkHours{}, false
	}
	for _, s := range emp.WorkSchedule {
		if s.DayOfWeek == int(weekday) {
			return WorkHours{StartTime: s.StartTime, EndTime: s.EndTime}, true
		}
	}
	return WorkHours{}, false
}

func IsWorkingOnDate(emp *models.Employee, date string) bool {
	_, ok := WorkHoursOn(emp, date)
	return ok
}

// IsTimeInWindow compares fixed-width HH:mm strings, bounds included.
func IsTimeInWindow(t string, wh WorkHours) bool {
	return t >= wh.StartTime && t <= wh.EndTime
}

// HasConflict scans appointments for a live booking on the same employee,
// date and start time. excludeID skips the appointment being edited.
func HasConflict(appointments []models.Appointment, employeeID, date, t, excludeID string) bool {
	for i := range appointments {
		ap := &appointments[i]
		if ap.ID == excludeID && excludeID != "" {
			continue
		}
		if ap.EmployeeID == employeeID &&
			ap.Date == date &&
			ap.StartTime == t &&
			ap.Status != string(StatusCancelled) {
			return true
		}
	}
	return false
}

// AddMinutes shifts an HH:mm time; the result is clamped to 23:59.
func AddMinutes(t string, minutes int) string {
	parsed, err := time.Parse(TimeLayout, t)
	if err != nil {
		return t
	}
	end := parsed.Add(time.Duration(minutes) * time.Minute)
	if end.Day() != parsed.Day() {
		return "23:59"
	}
	return end.Format(TimeLayout)
}
