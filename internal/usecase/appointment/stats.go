package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

// AppointmentStats backs the status tabs of the appointment table.
type AppointmentStats struct {
	repo domain.Repository
}

func NewAppointmentStats(repo domain.Repository) *AppointmentStats {
	return &AppointmentStats{repo: repo}
}

func (uc *AppointmentStats) Execute(ctx context.Context) (dto.AppointmentStatsDTO, error) {
	counts, err := uc.repo.CountByStatus(ctx)
	if err != nil {
		return dto.AppointmentStatsDTO{}, err
	}

	out := dto.AppointmentStatsDTO{
		Pending:   counts[string(domain.StatusPending)],
		Confirmed: counts[string(domain.StatusConfirmed)],
		Completed: counts[string(domain.StatusCompleted)],
		Cancelled: counts[string(domain.StatusCancelled)],
	}
	out.Total = out.Pending + out.Confirmed + out.Completed + out.Cancelled
	return out, nil
}
