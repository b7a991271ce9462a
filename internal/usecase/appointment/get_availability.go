package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

type GetAvailability struct {
	repo domain.Repository
	step time.Duration
}

func NewGetAvailability(repo domain.Repository, step time.Duration) *GetAvailability {
	if step <= 0 {
		step = 30 * time.Minute
	}
	return &GetAvailability{repo: repo, step: step}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	if _, err := domain.ParseDate(in.Date); err != nil {
		return nil, err
	}

	emp, err := uc.repo.GetEmployee(ctx, in.EmployeeID)
	if err != nil {
		return nil, notFoundAs(err, "employee_not_found")
	}

	out := &domain.Availability{
		Date:  in.Date,
		Slots: []string{},
	}

	wh, ok := domain.WorkHoursOn(emp, in.Date)
	if !ok {
		return out, nil
	}
	out.Working = true
	out.WorkHours = &wh

	appointments, err := uc.repo.ListActiveAppointmentsForDay(ctx, emp.ID, in.Date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(appointments))
	for _, ap := range appointments {
		taken[ap.StartTime] = struct{}{}
	}

	out.Slots = domain.EnumerateSlots(wh, uc.step, func(t string) bool {
		_, busy := taken[t]
		return busy
	})

	return out, nil
}
