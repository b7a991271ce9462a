package appointment

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID *uint

	CustomerName string
	ServiceID    string
	EmployeeID   string

	Date      string
	StartTime string
	Note      string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ctx, span := tracer.Start(ctx, "appointment.create")
	defer span.End()
	span.SetAttributes(
		attribute.String("employee.id", in.EmployeeID),
		attribute.String("appointment.date", in.Date),
	)

	slot, err := resolveSlot(ctx, uc.repo, in.ServiceID, in.EmployeeID, in.Date, in.StartTime, "")
	if err != nil {
		return nil, recordErr(span, err)
	}

	ap := &models.Appointment{
		CustomerName: in.CustomerName,
		ServiceID:    in.ServiceID,
		EmployeeID:   in.EmployeeID,
		Date:         in.Date,
		StartTime:    slot.start,
		EndTime:      slot.end,
		Status:       string(domain.InitialStatus()),
		Note:         in.Note,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, recordErr(span, err)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: ap.ID,
	})

	return ap, nil
}

// ======================================================
// SHARED
// ======================================================

type resolvedSlot struct {
	start string
	end   string
}

// resolveSlot validates the booking triple and derives the end time from
// the service duration. Nothing is written.
func resolveSlot(
	ctx context.Context,
	repo domain.Repository,
	serviceID, employeeID, date, startTime, excludeID string,
) (resolvedSlot, error) {

	if _, err := domain.ParseDate(date); err != nil {
		return resolvedSlot{}, err
	}
	start, err := domain.NormalizeTime(startTime)
	if err != nil {
		return resolvedSlot{}, err
	}

	svc, err := repo.GetService(ctx, serviceID)
	if err != nil {
		return resolvedSlot{}, notFoundAs(err, "service_not_found")
	}

	// An unknown employee is treated as not working that day.
	emp, err := repo.GetEmployee(ctx, employeeID)
	if err != nil && !isNotFound(err) {
		return resolvedSlot{}, err
	}

	if err := domain.ValidateBooking(ctx, repo, domain.BookingRequest{
		Employee:  emp,
		Date:      date,
		StartTime: start,
		ExcludeID: excludeID,
	}); err != nil {
		return resolvedSlot{}, err
	}

	return resolvedSlot{
		start: start,
		end:   domain.AddMinutes(start, svc.DurationMin),
	}, nil
}
