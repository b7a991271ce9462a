package appointment

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type ChangeAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   timezone.Clock
}

func NewChangeAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	now timezone.Clock,
) *ChangeAppointmentStatus {
	return &ChangeAppointmentStatus{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

func (uc *ChangeAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID string,
	status string,
	userID *uint,
) (*models.Appointment, error) {

	ctx, span := tracer.Start(ctx, "appointment.change_status")
	defer span.End()
	span.SetAttributes(
		attribute.String("appointment.id", appointmentID),
		attribute.String("appointment.status", status),
	)

	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, recordErr(span, err)
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, recordErr(span, notFoundAs(err, "appointment_not_found"))
	}

	from := ap.Status
	if err := domain.Transition(ap, to, uc.now()); err != nil {
		return nil, recordErr(span, err)
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, recordErr(span, err)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		UserID:   userID,
		Action:   "appointment_" + string(to),
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"from": from, "to": string(to)},
	})

	return ap, nil
}
