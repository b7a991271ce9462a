package appointment

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type UpdateAppointmentInput struct {
	ID     string
	UserID *uint

	CustomerName string
	ServiceID    string
	EmployeeID   string

	Date      string
	StartTime string
	Note      string
}

// UpdateAppointment edits the booking fields of an appointment. The id,
// status and creation time are preserved; the appointment does not conflict
// with itself.
type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ctx, span := tracer.Start(ctx, "appointment.update")
	defer span.End()
	span.SetAttributes(attribute.String("appointment.id", in.ID))

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, recordErr(span, notFoundAs(err, "appointment_not_found"))
	}

	slot, err := resolveSlot(ctx, uc.repo, in.ServiceID, in.EmployeeID, in.Date, in.StartTime, ap.ID)
	if err != nil {
		return nil, recordErr(span, err)
	}

	before := map[string]string{
		"employee_id": ap.EmployeeID,
		"date":        ap.Date,
		"start_time":  ap.StartTime,
	}

	ap.CustomerName = in.CustomerName
	ap.ServiceID = in.ServiceID
	ap.EmployeeID = in.EmployeeID
	ap.Date = in.Date
	ap.StartTime = slot.start
	ap.EndTime = slot.end
	ap.Note = in.Note

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, recordErr(span, err)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]any{"before": before},
	})

	return ap, nil
}
