package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListFilter narrows the appointment table. Empty fields are ignored;
// dates are inclusive YYYY-MM-DD bounds.
type ListFilter struct {
	Status     string
	EmployeeID string
	ServiceID  string
	DateFrom   string
	DateTo     string
	Query      string
	Sort       SortOrder
}

type Repository interface {
	ConflictChecker

	// -------- Lookups --------
	GetEmployee(
		ctx context.Context,
		id string,
	) (*models.Employee, error)

	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// -------- Appointment (create / edit / delete) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error

	// -------- Availability / listing --------
	ListActiveAppointmentsForDay(
		ctx context.Context,
		employeeID string,
		date string,
	) ([]models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	CountByStatus(
		ctx context.Context,
	) (map[string]int64, error)
}
