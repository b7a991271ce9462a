package snapshot

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/blob"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/testutil"
)

func TestExport_WritesLegacyArrays(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store, err := blob.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	svc := models.Service{Name: "Uốn tóc", Price: 500000, DurationMin: 120}
	require.NoError(t, db.Create(&svc).Error)
	emp := models.Employee{
		Name:         "Lan",
		Position:     models.PositionStylist,
		WorkSchedule: []models.WorkSchedule{{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"}},
	}
	require.NoError(t, db.Create(&emp).Error)
	require.NoError(t, db.Create(&models.Appointment{
		CustomerName: "An", ServiceID: svc.ID, EmployeeID: emp.ID,
		Date: "2026-10-19", StartTime: "09:00", EndTime: "11:00", Status: "pending",
	}).Error)

	counts, err := New(db, store, zap.NewNop()).Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, Counts{Services: 1, Employees: 1, Appointments: 1}, counts)

	raw, err := store.Get(ctx, "snapshot/salon_appointments.json")
	require.NoError(t, err)
	var aps []map[string]any
	require.NoError(t, json.Unmarshal(raw, &aps))
	require.Len(t, aps, 1)
	assert.Equal(t, "An", aps[0]["customerName"])
	assert.Equal(t, emp.ID, aps[0]["employee"])
	assert.Equal(t, "09:00", aps[0]["time"])

	raw, err = store.Get(ctx, "snapshot/salon_employees.json")
	require.NoError(t, err)
	var emps []map[string]any
	require.NoError(t, json.Unmarshal(raw, &emps))
	require.Len(t, emps, 1)
	assert.Len(t, emps[0]["workSchedule"], 1)
}

const legacyServices = `[
  {"id":"1","name":"Cắt tóc nam","description":"","price":100000,"duration":30},
  {"id":"2","name":"","description":"","price":0,"duration":0}
]`

const legacyEmployees = `[
  {"id":"e1","name":"Lan","position":"stylist","maxCustomersPerDay":8,
   "workSchedule":[{"dayOfWeek":1,"startTime":"09:00","endTime":"17:00"}],
   "ratings":[{"id":"r1","appointmentId":"a1","customerId":"c1","rating":5,"comment":"","createdAt":"2026-01-02T03:04:05.000Z"},
              {"id":"r2","appointmentId":"a2","customerId":"c2","rating":4,"comment":"","createdAt":"2026-01-02T03:04:05.000Z"}],
   "averageRating":0,"createdAt":"2026-01-01T00:00:00.000Z","updatedAt":"2026-01-01T00:00:00.000Z"}
]`

const legacyAppointments = `[
  {"id":"a1","customerName":"An","service":"1","employee":"e1","date":"2026-10-19","time":"09:00","status":"Pending","createdAt":"2026-01-01T00:00:00.000Z","updatedAt":"2026-01-01T00:00:00.000Z"},
  {"id":"a2","customerName":"Bình","service":"1","employee":"e1","date":"2026-10-19","time":"09:00","status":"confirmed","createdAt":"2026-01-01T00:00:00.000Z","updatedAt":"2026-01-01T00:00:00.000Z"},
  {"id":"a3","customerName":"Chi","service":"1","employee":"e1","date":"2026-10-19","time":"09:00","status":"cancelled","createdAt":"2026-01-01T00:00:00.000Z","updatedAt":"2026-01-01T00:00:00.000Z"}
]`

func TestImport_LegacyData(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	store, err := blob.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "snapshot/salon_services.json", []byte(legacyServices), "application/json"))
	require.NoError(t, store.Put(ctx, "snapshot/salon_employees.json", []byte(legacyEmployees), "application/json"))
	require.NoError(t, store.Put(ctx, "snapshot/salon_appointments.json", []byte(legacyAppointments), "application/json"))

	res, err := New(db, store, zap.NewNop()).Import(ctx)
	require.NoError(t, err)

	assert.Equal(t, Counts{Services: 1, Employees: 1, Appointments: 2}, res.Imported)
	assert.Equal(t, 2, res.Skipped, "nameless service and the second booking of a held slot")

	var emp models.Employee
	require.NoError(t, db.Preload("WorkSchedule").Preload("Ratings").Where("id = ?", "e1").First(&emp).Error)
	assert.Equal(t, 4.5, emp.AverageRating)
	assert.Len(t, emp.WorkSchedule, 1)
	assert.Len(t, emp.Ratings, 2)

	var a1 models.Appointment
	require.NoError(t, db.Where("id = ?", "a1").First(&a1).Error)
	assert.Equal(t, "pending", a1.Status)
	assert.Equal(t, "09:30", a1.EndTime)

	// Importing again updates in place.
	res, err = New(db, store, zap.NewNop()).Import(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported.Appointments)

	var total int64
	require.NoError(t, db.Model(&models.Appointment{}).Count(&total).Error)
	assert.Equal(t, int64(2), total)
}

func TestImport_NothingToImport(t *testing.T) {
	store, err := blob.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = New(testutil.NewDB(t), store, zap.NewNop()).Import(context.Background())
	assert.True(t, httperr.IsBusiness(err, "snapshot_not_found"))
}
