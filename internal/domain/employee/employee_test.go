package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestAverageRating(t *testing.T) {
	assert.Zero(t, AverageRating(nil))

	ratings := []models.Rating{{Rating: 5}, {Rating: 4}, {Rating: 4}}
	assert.Equal(t, 4.3, AverageRating(ratings))

	assert.Equal(t, 4.5, AverageRating([]models.Rating{{Rating: 5}, {Rating: 4}}))
}

func TestValidRating(t *testing.T) {
	assert.NoError(t, ValidRating(1))
	assert.NoError(t, ValidRating(5))
	assert.True(t, httperr.IsBusiness(ValidRating(0), "invalid_rating"))
	assert.True(t, httperr.IsBusiness(ValidRating(6), "invalid_rating"))
}

func TestValidPosition(t *testing.T) {
	assert.True(t, ValidPosition("stylist"))
	assert.False(t, ValidPosition("manager"))
}

func TestValidateSchedule(t *testing.T) {
	entries := []models.WorkSchedule{
		{DayOfWeek: 1, StartTime: "9:00", EndTime: "17:00"},
		{DayOfWeek: 6, StartTime: "08:00", EndTime: "12:00"},
	}
	require.NoError(t, ValidateSchedule(entries))
	assert.Equal(t, "09:00", entries[0].StartTime)

	cases := map[string]struct {
		entries []models.WorkSchedule
		code    string
	}{
		"day out of range": {[]models.WorkSchedule{{DayOfWeek: 7, StartTime: "09:00", EndTime: "10:00"}}, "invalid_schedule"},
		"bad time":         {[]models.WorkSchedule{{DayOfWeek: 1, StartTime: "nine", EndTime: "10:00"}}, "invalid_schedule"},
		"reversed":         {[]models.WorkSchedule{{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"}}, "invalid_schedule"},
		"repeated day": {[]models.WorkSchedule{
			{DayOfWeek: 2, StartTime: "09:00", EndTime: "12:00"},
			{DayOfWeek: 2, StartTime: "13:00", EndTime: "18:00"},
		}, "duplicate_schedule_day"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := ValidateSchedule(tc.entries)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}
}
