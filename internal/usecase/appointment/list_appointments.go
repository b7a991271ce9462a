package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]dto.AppointmentListDTO, error) {

	if filter.Status != "" {
		if _, err := domain.ParseStatus(filter.Status); err != nil {
			return nil, err
		}
	}
	for _, d := range []string{filter.DateFrom, filter.DateTo} {
		if d == "" {
			continue
		}
		if _, err := domain.ParseDate(d); err != nil {
			return nil, err
		}
	}
	switch filter.Sort {
	case "", domain.SortAsc, domain.SortDesc:
	default:
		return nil, httperr.ErrBusiness("invalid_request")
	}

	appointments, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		row := dto.AppointmentListDTO{
			ID:           ap.ID,
			CustomerName: ap.CustomerName,
			EmployeeID:   ap.EmployeeID,
			ServiceID:    ap.ServiceID,
			Date:         ap.Date,
			StartTime:    ap.StartTime,
			EndTime:      ap.EndTime,
			Status:       ap.Status,
			Note:         ap.Note,
			CreatedAt:    ap.CreatedAt,
		}
		if ap.Employee != nil {
			row.EmployeeName = ap.Employee.Name
		}
		if ap.Service != nil {
			row.ServiceName = ap.Service.Name
		}
		out = append(out, row)
	}

	return out, nil
}
