package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// 2026-10-19 is a Monday.
const monday = "2026-10-19"

func mondayWorker() *models.Employee {
	return &models.Employee{
		BaseModel: models.BaseModel{ID: "emp-1"},
		Name:      "Lan",
		WorkSchedule: []models.WorkSchedule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
			{DayOfWeek: 3, StartTime: "13:00", EndTime: "20:00"},
		},
	}
}

func TestParseDate(t *testing.T) {
	wd, err := ParseDate(monday)
	require.NoError(t, err)
	assert.Equal(t, 1, int(wd))

	wd, err = ParseDate("2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, 0, int(wd), "sunday is day 0")

	_, err = ParseDate("19/10/2026")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestNormalizeTime(t *testing.T) {
	got, err := NormalizeTime("9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", got)

	_, err = NormalizeTime("25:00")
	assert.True(t, httperr.IsBusiness(err, "invalid_time"))
}

func TestWorkHoursOn(t *testing.T) {
	emp := mondayWorker()

	wh, ok := WorkHoursOn(emp, monday)
	require.True(t, ok)
	assert.Equal(t, WorkHours{StartTime: "09:00", EndTime: "17:00"}, wh)

	_, ok = WorkHoursOn(emp, "2026-10-20")
	assert.False(t, ok, "no entry for tuesday")

	_, ok = WorkHoursOn(nil, monday)
	assert.False(t, ok, "unknown employee has no hours")

	_, ok = WorkHoursOn(emp, "not-a-date")
	assert.False(t, ok)
}

func TestIsWorkingOnDate_EveryDayWithoutEntry(t *testing.T) {
	emp := mondayWorker()
	// 2026-10-18 (Sun) .. 2026-10-24 (Sat)
	days := []string{"2026-10-18", "2026-10-19", "2026-10-20", "2026-10-21", "2026-10-22", "2026-10-23", "2026-10-24"}
	want := []bool{false, true, false, true, false, false, false}

	for i, d := range days {
		assert.Equal(t, want[i], IsWorkingOnDate(emp, d), d)
	}
}

func TestIsTimeInWindow_Inclusive(t *testing.T) {
	wh := WorkHours{StartTime: "09:00", EndTime: "17:00"}

	assert.True(t, IsTimeInWindow("09:00", wh))
	assert.True(t, IsTimeInWindow("12:30", wh))
	assert.True(t, IsTimeInWindow("17:00", wh))
	assert.False(t, IsTimeInWindow("08:30", wh))
	assert.False(t, IsTimeInWindow("17:01", wh))
}

func TestHasConflict(t *testing.T) {
	aps := []models.Appointment{
		{BaseModel: models.BaseModel{ID: "a"}, EmployeeID: "emp-1", Date: monday, StartTime: "09:00", Status: "pending"},
		{BaseModel: models.BaseModel{ID: "b"}, EmployeeID: "emp-1", Date: monday, StartTime: "10:00", Status: "cancelled"},
		{BaseModel: models.BaseModel{ID: "c"}, EmployeeID: "emp-2", Date: monday, StartTime: "11:00", Status: "confirmed"},
	}

	assert.True(t, HasConflict(aps, "emp-1", monday, "09:00", ""))
	assert.False(t, HasConflict(aps, "emp-1", monday, "09:00", "a"), "edited appointment ignores itself")
	assert.False(t, HasConflict(aps, "emp-1", monday, "10:00", ""), "cancelled does not block")
	assert.False(t, HasConflict(aps, "emp-1", monday, "11:00", ""), "other employee")
	assert.False(t, HasConflict(aps, "emp-1", "2026-10-20", "09:00", ""), "other date")
}

func TestAddMinutes(t *testing.T) {
	assert.Equal(t, "09:30", AddMinutes("09:00", 30))
	assert.Equal(t, "11:00", AddMinutes("09:00", 120))
	assert.Equal(t, "23:59", AddMinutes("23:00", 90))
}
