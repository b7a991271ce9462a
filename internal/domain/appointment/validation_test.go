package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type stubChecker struct {
	taken map[string]bool
	err   error
	calls int
}

func (s *stubChecker) HasActiveAppointmentAt(_ context.Context, employeeID, date, startTime, _ string) (bool, error) {
	s.calls++
	return s.taken[employeeID+"|"+date+"|"+startTime], s.err
}

func TestValidateBooking(t *testing.T) {
	ctx := context.Background()
	emp := mondayWorker()
	checker := &stubChecker{taken: map[string]bool{"emp-1|" + monday + "|10:00": true}}

	cases := []struct {
		name string
		req  BookingRequest
		code string
	}{
		{"not working", BookingRequest{Employee: emp, Date: "2026-10-20", StartTime: "09:00"}, "employee_not_working"},
		{"unknown employee", BookingRequest{Employee: nil, Date: monday, StartTime: "09:00"}, "employee_not_working"},
		{"too early", BookingRequest{Employee: emp, Date: monday, StartTime: "08:30"}, "outside_working_hours"},
		{"too late", BookingRequest{Employee: emp, Date: monday, StartTime: "17:30"}, "outside_working_hours"},
		{"taken", BookingRequest{Employee: emp, Date: monday, StartTime: "10:00"}, "time_conflict"},
		{"free", BookingRequest{Employee: emp, Date: monday, StartTime: "09:00"}, ""},
		{"closing time", BookingRequest{Employee: emp, Date: monday, StartTime: "17:00"}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBooking(ctx, checker, tc.req)
			if tc.code == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}

func TestValidateBooking_OutsideHoursCarriesWindow(t *testing.T) {
	err := ValidateBooking(context.Background(), &stubChecker{}, BookingRequest{
		Employee: mondayWorker(), Date: monday, StartTime: "08:30",
	})

	be, ok := httperr.AsBusiness(err)
	assert.True(t, ok)
	assert.Equal(t, []any{"09:00", "17:00"}, be.Args)
}

func TestValidateBooking_CheckerError(t *testing.T) {
	boom := errors.New("db down")
	checker := &stubChecker{err: boom}

	err := ValidateBooking(context.Background(), checker, BookingRequest{
		Employee: mondayWorker(), Date: monday, StartTime: "09:00",
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, checker.calls)
}
