package appointment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/testutil"
	uc "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

const monday = "2026-10-19"

type fixture struct {
	db    *gorm.DB
	repo  *repository.AppointmentGormRepository
	audit *audit.Dispatcher
	emp   *models.Employee
	svc   *models.Service
	now   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)

	emp := &models.Employee{
		Name:     "Lan",
		Position: models.PositionStylist,
		WorkSchedule: []models.WorkSchedule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
		},
	}
	require.NoError(t, db.Create(emp).Error)

	svc := &models.Service{Name: "Cắt tóc nam", Price: 100000, DurationMin: 30}
	require.NoError(t, db.Create(svc).Error)

	d := audit.NewDispatcher(zap.NewNop(), audit.New(db))
	t.Cleanup(d.Close)

	return &fixture{
		db:    db,
		repo:  repository.NewAppointmentGormRepository(db),
		audit: d,
		emp:   emp,
		svc:   svc,
		now:   time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) create(t *testing.T, start, customer string) (*models.Appointment, error) {
	t.Helper()
	return uc.NewCreateAppointment(f.repo, f.audit).Execute(context.Background(), uc.CreateAppointmentInput{
		CustomerName: customer,
		ServiceID:    f.svc.ID,
		EmployeeID:   f.emp.ID,
		Date:         monday,
		StartTime:    start,
	})
}

func (f *fixture) changeStatus(id, status string) (*models.Appointment, error) {
	clock := func() time.Time { return f.now }
	return uc.NewChangeAppointmentStatus(f.repo, f.audit, clock).Execute(context.Background(), id, status, nil)
}

func TestBookingScenario(t *testing.T) {
	f := newFixture(t)

	_, err := f.create(t, "08:30", "An")
	assert.True(t, httperr.IsBusiness(err, "outside_working_hours"), "got %v", err)

	first, err := f.create(t, "09:00", "An")
	require.NoError(t, err)
	assert.Equal(t, "pending", first.Status)
	assert.Equal(t, "09:30", first.EndTime)

	_, err = f.create(t, "09:00", "Bình")
	assert.True(t, httperr.IsBusiness(err, "time_conflict"), "got %v", err)

	cancelled, err := f.changeStatus(first.ID, "cancelled")
	require.NoError(t, err)
	require.NotNil(t, cancelled.CancelledAt)

	retry, err := f.create(t, "09:00", "Bình")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, retry.ID)

	var live int64
	require.NoError(t, f.db.Model(&models.Appointment{}).
		Where("employee_id = ? AND date = ? AND start_time = ? AND status <> ?", f.emp.ID, monday, "09:00", "cancelled").
		Count(&live).Error)
	assert.Equal(t, int64(1), live)
}

func TestCreate_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	create := uc.NewCreateAppointment(f.repo, f.audit)

	_, err := create.Execute(ctx, uc.CreateAppointmentInput{
		CustomerName: "An", ServiceID: f.svc.ID, EmployeeID: f.emp.ID, Date: "2026-10-20", StartTime: "09:00",
	})
	assert.True(t, httperr.IsBusiness(err, "employee_not_working"), "tuesday")

	_, err = create.Execute(ctx, uc.CreateAppointmentInput{
		CustomerName: "An", ServiceID: f.svc.ID, EmployeeID: "ghost", Date: monday, StartTime: "09:00",
	})
	assert.True(t, httperr.IsBusiness(err, "employee_not_working"), "unknown employee")

	_, err = create.Execute(ctx, uc.CreateAppointmentInput{
		CustomerName: "An", ServiceID: "ghost", EmployeeID: f.emp.ID, Date: monday, StartTime: "09:00",
	})
	assert.True(t, httperr.IsBusiness(err, "service_not_found"))

	_, err = create.Execute(ctx, uc.CreateAppointmentInput{
		CustomerName: "An", ServiceID: f.svc.ID, EmployeeID: f.emp.ID, Date: "19-10-2026", StartTime: "09:00",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	var count int64
	require.NoError(t, f.db.Model(&models.Appointment{}).Count(&count).Error)
	assert.Zero(t, count, "rejected bookings write nothing")
}

func TestUpdate_KeepsIdentityAndExcludesSelf(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create(t, "10:00", "An")
	require.NoError(t, err)
	_, err = f.changeStatus(ap.ID, "confirmed")
	require.NoError(t, err)

	other, err := f.create(t, "11:00", "Bình")
	require.NoError(t, err)

	update := uc.NewUpdateAppointment(f.repo, f.audit)

	// Same slot as itself is not a conflict.
	got, err := update.Execute(ctx, uc.UpdateAppointmentInput{
		ID: ap.ID, CustomerName: "An Nguyễn", ServiceID: f.svc.ID, EmployeeID: f.emp.ID,
		Date: monday, StartTime: "10:00", Note: "khách quen",
	})
	require.NoError(t, err)
	assert.Equal(t, ap.ID, got.ID)
	assert.Equal(t, "confirmed", got.Status)
	assert.Equal(t, "An Nguyễn", got.CustomerName)

	_, err = update.Execute(ctx, uc.UpdateAppointmentInput{
		ID: ap.ID, CustomerName: "An", ServiceID: f.svc.ID, EmployeeID: f.emp.ID,
		Date: monday, StartTime: other.StartTime,
	})
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	_, err = update.Execute(ctx, uc.UpdateAppointmentInput{
		ID: "missing", CustomerName: "An", ServiceID: f.svc.ID, EmployeeID: f.emp.ID,
		Date: monday, StartTime: "12:00",
	})
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))

	stored, err := f.repo.GetAppointment(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "10:00", stored.StartTime)
	assert.WithinDuration(t, ap.CreatedAt, stored.CreatedAt, time.Second)
}

func TestChangeStatus_Lifecycle(t *testing.T) {
	f := newFixture(t)

	ap, err := f.create(t, "09:00", "An")
	require.NoError(t, err)

	_, err = f.changeStatus(ap.ID, "completed")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"), "pending cannot complete")

	_, err = f.changeStatus(ap.ID, "archived")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	confirmed, err := f.changeStatus(ap.ID, "confirmed")
	require.NoError(t, err)
	assert.True(t, confirmed.ConfirmedAt.Equal(f.now))

	completed, err := f.changeStatus(ap.ID, "completed")
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)

	_, err = f.changeStatus(ap.ID, "cancelled")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"), "completed is final")

	f.audit.Close()
	var actions []string
	require.NoError(t, f.db.Model(&models.AuditLog{}).Order("id").Pluck("action", &actions).Error)
	assert.Equal(t, []string{"appointment_created", "appointment_confirmed", "appointment_completed"}, actions)
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	del := uc.NewDeleteAppointment(f.repo, f.audit)

	ap, err := f.create(t, "09:00", "An")
	require.NoError(t, err)

	require.NoError(t, del.Execute(ctx, ap.ID, nil))
	assert.True(t, httperr.IsBusiness(del.Execute(ctx, ap.ID, nil), "appointment_not_found"))
}

func TestGetAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	get := uc.NewGetAvailability(f.repo, time.Hour)

	_, err := f.create(t, "10:00", "An")
	require.NoError(t, err)
	cancelled, err := f.create(t, "11:00", "Bình")
	require.NoError(t, err)
	_, err = f.changeStatus(cancelled.ID, "cancelled")
	require.NoError(t, err)

	av, err := get.Execute(ctx, domain.AvailabilityInput{EmployeeID: f.emp.ID, Date: monday})
	require.NoError(t, err)
	assert.True(t, av.Working)
	assert.Equal(t, &domain.WorkHours{StartTime: "09:00", EndTime: "17:00"}, av.WorkHours)
	assert.Equal(t, []string{"09:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}, av.Slots)

	off, err := get.Execute(ctx, domain.AvailabilityInput{EmployeeID: f.emp.ID, Date: "2026-10-18"})
	require.NoError(t, err)
	assert.False(t, off.Working)
	assert.Empty(t, off.Slots)

	_, err = get.Execute(ctx, domain.AvailabilityInput{EmployeeID: "ghost", Date: monday})
	assert.True(t, httperr.IsBusiness(err, "employee_not_found"))
}

func TestListAndStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.create(t, "10:00", "An")
	require.NoError(t, err)
	_, err = f.create(t, "09:00", "Bình")
	require.NoError(t, err)
	_, err = f.changeStatus(a.ID, "confirmed")
	require.NoError(t, err)

	rows, err := uc.NewListAppointments(f.repo).Execute(ctx, domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "09:00", rows[0].StartTime)
	assert.Equal(t, "Lan", rows[0].EmployeeName)
	assert.Equal(t, "Cắt tóc nam", rows[0].ServiceName)

	_, err = uc.NewListAppointments(f.repo).Execute(ctx, domain.ListFilter{Status: "done"})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	stats, err := uc.NewAppointmentStats(f.repo).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Confirmed)
}
