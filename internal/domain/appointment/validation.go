package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ConflictChecker answers whether a live appointment already holds a slot.
type ConflictChecker interface {
	HasActiveAppointmentAt(ctx context.Context, employeeID, date, startTime, excludeID string) (bool, error)
}

type BookingRequest struct {
	Employee  *models.Employee
	Date      string
	StartTime string
	ExcludeID string
}

// ValidateBooking applies the submission rules in order: the employee works
// that day, the time is inside the work window, and the slot is free.
func ValidateBooking(ctx context.Context, checker ConflictChecker, req BookingRequest) error {
	wh, ok := WorkHoursOn(req.Employee, req.Date)
	if !ok {
		return httperr.ErrBusiness("employee_not_working")
	}

	if !IsTimeInWindow(req.StartTime, wh) {
		return httperr.ErrBusiness("outside_working_hours", wh.StartTime, wh.EndTime)
	}

	taken, err := checker.HasActiveAppointmentAt(ctx, req.Employee.ID, req.Date, req.StartTime, req.ExcludeID)
	if err != nil {
		return err
	}
	if taken {
		return httperr.ErrBusiness("time_conflict")
	}

	return nil
}
