package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/blob"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/snapshot"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// Deps are the process-wide singletons built in main.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Logger *zap.Logger
	Audit  *audit.Dispatcher
	Blobs  blob.Store

	// Redis is optional; without it the API is not rate limited.
	Redis *redis.Client
}

func RegisterRoutes(r *gin.Engine, d Deps) error {
	db, cfg := d.DB, d.Config

	// ClientIP keys the rate limiter; only listed proxies may set it.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return err
	}

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(d.Logger),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	clock := timezone.ClockIn(cfg.Timezone)

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		time.Duration(cfg.SlotStepMinutes)*time.Minute,
	)

	appointmentUC := handlers.AppointmentUseCases{
		Create:       ucAppointment.NewCreateAppointment(appointmentRepo, d.Audit),
		Update:       ucAppointment.NewUpdateAppointment(appointmentRepo, d.Audit),
		ChangeStatus: ucAppointment.NewChangeAppointmentStatus(appointmentRepo, d.Audit, clock),
		Delete:       ucAppointment.NewDeleteAppointment(appointmentRepo, d.Audit),
		List:         ucAppointment.NewListAppointments(appointmentRepo),
		Stats:        ucAppointment.NewAppointmentStats(appointmentRepo),
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, d.Audit)
	employeeHandler := handlers.NewEmployeeHandler(db, d.Audit, d.Blobs, availabilityUC)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db, d.Audit)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo, appointmentUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	snapshotHandler := handlers.NewSnapshotHandler(snapshot.New(db, d.Blobs, d.Logger), d.Audit)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	if d.Redis != nil {
		api.Use(middleware.NewRedisRateLimiter(d.Redis, cfg.RateLimitPerMinute, time.Minute).Middleware(d.Logger))
	}
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services/:id", serviceHandler.Get)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// EMPLOYEES
			// ------------------------------
			secured.GET("/employees", employeeHandler.List)
			secured.POST("/employees", employeeHandler.Create)
			secured.GET("/employees/:id", employeeHandler.Get)
			secured.PUT("/employees/:id", employeeHandler.Update)
			secured.DELETE("/employees/:id", employeeHandler.Delete)

			secured.GET("/employees/:id/schedule", workingHoursHandler.Get)
			secured.PUT("/employees/:id/schedule", workingHoursHandler.Update)
			secured.POST("/employees/:id/ratings", employeeHandler.AddRating)
			secured.GET("/employees/:id/availability", employeeHandler.Availability)
			secured.POST("/employees/:id/avatar", employeeHandler.UploadAvatar)
			secured.GET("/employees/:id/avatar", employeeHandler.Avatar)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/stats", appointmentHandler.Stats)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.PATCH("/appointments/:id/status", appointmentHandler.ChangeStatus)

			secured.GET("/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/snapshot/export", snapshotHandler.Export)
				admin.POST("/snapshot/import", snapshotHandler.Import)
			}
		}
	}

	return nil
}
