package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-scheduler/internal/blob"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/employee"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Service moves the whole salon state to and from the legacy per-module
// JSON arrays kept in a blob store.
type Service struct {
	db    *gorm.DB
	store blob.Store
	log   *zap.Logger
}

func New(db *gorm.DB, store blob.Store, log *zap.Logger) *Service {
	return &Service{db: db, store: store, log: log}
}

type Counts struct {
	Services     int `json:"services"`
	Employees    int `json:"employees"`
	Appointments int `json:"appointments"`
}

type ImportResult struct {
	Imported Counts `json:"imported"`
	Skipped  int    `json:"skipped"`
}

// ======================================================
// EXPORT
// ======================================================

func (s *Service) Export(ctx context.Context) (Counts, error) {
	db := s.db.WithContext(ctx)

	var services []models.Service
	if err := db.Order("created_at").Find(&services).Error; err != nil {
		return Counts{}, err
	}
	var employees []models.Employee
	if err := db.Preload("WorkSchedule").Preload("Ratings").Order("created_at").Find(&employees).Error; err != nil {
		return Counts{}, err
	}
	var appointments []models.Appointment
	if err := db.Order("date").Order("start_time").Find(&appointments).Error; err != nil {
		return Counts{}, err
	}

	svcRecs := make([]serviceRecord, 0, len(services))
	for _, sv := range services {
		svcRecs = append(svcRecs, toServiceRecord(sv))
	}
	empRecs := make([]employeeRecord, 0, len(employees))
	for _, e := range employees {
		empRecs = append(empRecs, toEmployeeRecord(e))
	}
	apRecs := make([]appointmentRecord, 0, len(appointments))
	for _, ap := range appointments {
		apRecs = append(apRecs, toAppointmentRecord(ap))
	}

	for key, v := range map[string]any{
		KeyServices:     svcRecs,
		KeyEmployees:    empRecs,
		KeyAppointments: apRecs,
	} {
		if err := s.put(ctx, key, v); err != nil {
			return Counts{}, err
		}
	}

	return Counts{
		Services:     len(svcRecs),
		Employees:    len(empRecs),
		Appointments: len(apRecs),
	}, nil
}

func (s *Service) put(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, objectKey(key), b, "application/json"); err != nil {
		return fmt.Errorf("snapshot %s: %w", key, err)
	}
	return nil
}

// ======================================================
// IMPORT
// ======================================================

// Import upserts services, then employees, then appointments. Records that
// fail validation or whose slot is already held are skipped and counted;
// each record is written on its own so one bad row never aborts the rest.
func (s *Service) Import(ctx context.Context) (ImportResult, error) {
	var (
		svcRecs []serviceRecord
		empRecs []employeeRecord
		apRecs  []appointmentRecord
	)

	found := 0
	for key, dst := range map[string]any{
		KeyServices:     &svcRecs,
		KeyEmployees:    &empRecs,
		KeyAppointments: &apRecs,
	} {
		ok, err := s.get(ctx, key, dst)
		if err != nil {
			return ImportResult{}, err
		}
		if ok {
			found++
		}
	}
	if found == 0 {
		return ImportResult{}, httperr.ErrBusiness("snapshot_not_found")
	}

	var res ImportResult

	for _, rec := range svcRecs {
		if err := s.importService(ctx, rec.model()); err != nil {
			s.skip(&res, KeyServices, rec.ID, err)
			continue
		}
		res.Imported.Services++
	}

	for _, rec := range empRecs {
		if err := s.importEmployee(ctx, rec.model()); err != nil {
			s.skip(&res, KeyEmployees, rec.ID, err)
			continue
		}
		res.Imported.Employees++
	}

	for _, rec := range apRecs {
		if err := s.importAppointment(ctx, rec.model()); err != nil {
			s.skip(&res, KeyAppointments, rec.ID, err)
			continue
		}
		res.Imported.Appointments++
	}

	return res, nil
}

func (s *Service) get(ctx context.Context, key string, dst any) (bool, error) {
	b, err := s.store.Get(ctx, objectKey(key))
	if errors.Is(err, blob.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("snapshot %s: %w", key, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return false, httperr.ErrBusiness("invalid_request")
	}
	return true, nil
}

func (s *Service) skip(res *ImportResult, key, id string, err error) {
	res.Skipped++
	s.log.Warn("snapshot record skipped",
		zap.String("key", key),
		zap.String("id", id),
		zap.Error(err),
	)
}

func (s *Service) importService(ctx context.Context, svc models.Service) error {
	if svc.Name == "" || svc.DurationMin <= 0 {
		return httperr.ErrBusiness("invalid_request")
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&svc).Error
}

func (s *Service) importEmployee(ctx context.Context, emp models.Employee) error {
	if !employee.ValidPosition(emp.Position) {
		return httperr.ErrBusiness("invalid_position")
	}
	if err := employee.ValidateSchedule(emp.WorkSchedule); err != nil {
		return err
	}
	emp.AverageRating = employee.AverageRating(emp.Ratings)

	schedule, ratings := emp.WorkSchedule, emp.Ratings
	emp.WorkSchedule, emp.Ratings = nil, nil

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).
			Create(&emp).Error; err != nil {
			return err
		}

		if err := tx.Where("employee_id = ?", emp.ID).Delete(&models.WorkSchedule{}).Error; err != nil {
			return err
		}
		for i := range schedule {
			schedule[i].EmployeeID = emp.ID
		}
		if len(schedule) > 0 {
			if err := tx.Create(&schedule).Error; err != nil {
				return err
			}
		}

		for i := range ratings {
			ratings[i].EmployeeID = emp.ID
			if err := employee.ValidRating(ratings[i].Rating); err != nil {
				return err
			}
		}
		if len(ratings) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				UpdateAll: true,
			}).Create(&ratings).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Service) importAppointment(ctx context.Context, ap models.Appointment) error {
	if _, err := domain.ParseStatus(ap.Status); err != nil {
		ap.Status = string(domain.InitialStatus())
	}
	if _, err := domain.ParseDate(ap.Date); err != nil {
		return err
	}
	start, err := domain.NormalizeTime(ap.StartTime)
	if err != nil {
		return err
	}
	ap.StartTime = start

	db := s.db.WithContext(ctx)

	if ap.EndTime == "" {
		var svc models.Service
		if err := db.Where("id = ?", ap.ServiceID).First(&svc).Error; err == nil {
			ap.EndTime = domain.AddMinutes(ap.StartTime, svc.DurationMin)
		}
	}

	var existing int64
	if ap.ID != "" {
		if err := db.Model(&models.Appointment{}).Where("id = ?", ap.ID).Count(&existing).Error; err != nil {
			return err
		}
	}

	if existing > 0 {
		err = db.Omit(clause.Associations).Save(&ap).Error
	} else {
		err = db.Omit(clause.Associations).Create(&ap).Error
	}
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("time_conflict")
	}
	return err
}
