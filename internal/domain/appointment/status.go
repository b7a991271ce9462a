package appointment

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = models.AppointmentPending
	StatusConfirmed Status = models.AppointmentConfirmed
	StatusCompleted Status = models.AppointmentCompleted
	StatusCancelled Status = models.AppointmentCancelled
)

var AllStatuses = []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func ParseStatus(s string) (Status, error) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// ===============================
// Validations
// ===============================

// CanTransition checks the lifecycle: pending -> confirmed|cancelled,
// confirmed -> completed|cancelled. Completed and cancelled are final.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state", string(from), string(to))
}

func InitialStatus() Status {
	return StatusPending
}
