package employee

import (
	"fmt"
	"math"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var Positions = []string{
	models.PositionStylist,
	models.PositionTechnician,
	models.PositionAssistant,
	models.PositionReceptionist,
}

func ValidPosition(p string) bool {
	for _, v := range Positions {
		if v == p {
			return true
		}
	}
	return false
}

// AverageRating is the mean score rounded to one decimal, 0 without ratings.
func AverageRating(ratings []models.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10
}

func ValidRating(score int) error {
	if score < 1 || score > 5 {
		return httperr.ErrBusiness("invalid_rating")
	}
	return nil
}

// ValidateSchedule normalizes times in place and rejects bad days, reversed
// windows and repeated weekdays.
func ValidateSchedule(entries []models.WorkSchedule) error {
	seen := make(map[int]bool, len(entries))

	for i := range entries {
		e := &entries[i]

		if e.DayOfWeek < 0 || e.DayOfWeek > 6 {
			return httperr.ErrBusiness("invalid_schedule", fmt.Sprintf("day_of_week=%d", e.DayOfWeek))
		}
		if seen[e.DayOfWeek] {
			return httperr.ErrBusiness("duplicate_schedule_day")
		}
		seen[e.DayOfWeek] = true

		start, err := domain.NormalizeTime(e.StartTime)
		if err != nil {
			return httperr.ErrBusiness("invalid_schedule", "start_time="+e.StartTime)
		}
		end, err := domain.NormalizeTime(e.EndTime)
		if err != nil {
			return httperr.ErrBusiness("invalid_schedule", "end_time="+e.EndTime)
		}
		if start > end {
			return httperr.ErrBusiness("invalid_schedule", start+" > "+end)
		}

		e.StartTime, e.EndTime = start, end
	}

	return nil
}
