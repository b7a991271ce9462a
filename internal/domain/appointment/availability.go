package appointment

import "time"

type AvailabilityInput struct {
	EmployeeID string
	Date       string
}

type Availability struct {
	Date      string     `json:"date"`
	Working   bool       `json:"working"`
	WorkHours *WorkHours `json:"work_hours,omitempty"`
	Slots     []string   `json:"slots"`
}

// EnumerateSlots walks the window from start to end inclusive in steps and
// keeps the times for which taken reports false.
func EnumerateSlots(wh WorkHours, step time.Duration, taken func(string) bool) []string {
	slots := []string{}
	if step <= 0 {
		return slots
	}

	start, err := time.Parse(TimeLayout, wh.StartTime)
	if err != nil {
		return slots
	}
	end, err := time.Parse(TimeLayout, wh.EndTime)
	if err != nil {
		return slots
	}

	for cur := start; !cur.After(end); cur = cur.Add(step) {
		t := cur.Format(TimeLayout)
		if taken != nil && taken(t) {
			continue
		}
		slots = append(slots, t)
	}
	return slots
}
