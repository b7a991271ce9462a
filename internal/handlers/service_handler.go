package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, audit *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: audit}
}

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"max=500"`
	Price       float64 `json:"price" binding:"gte=0"`
	Duration    int     `json:"duration" binding:"required,gt=0,lte=720"`
}

func (r ServiceRequest) apply(s *models.Service) {
	s.Name = strings.TrimSpace(r.Name)
	s.Description = r.Description
	s.Price = r.Price
	s.DurationMin = r.Duration
}

// ======================================================
// LIST
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context())

	if query := strings.TrimSpace(c.Query("query")); query != "" {
		q = q.Where("LOWER(name) LIKE ? ESCAPE '!'", dbpkg.ContainsPattern(query))
	}

	var services []models.Service
	if err := q.Order("name ASC").Find(&services).Error; err != nil {
		fail(c, err, "failed_to_list_services")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	svc, ok := h.load(c)
	if !ok {
		return
	}
	httpresp.OK(c, svc)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	var svc models.Service
	req.apply(&svc)

	if !h.nameAvailable(c, svc.Name, "", "failed_to_create_service") {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&svc).Error; err != nil {
		fail(c, err, "failed_to_create_service")
		return
	}

	writeAudit(c, h.audit, "service_created", "service", svc.ID, nil)
	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	svc, ok := h.load(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	req.apply(svc)

	if !h.nameAvailable(c, svc.Name, svc.ID, "failed_to_update_service") {
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Omit(clause.Associations).Save(svc).Error; err != nil {
		fail(c, err, "failed_to_update_service")
		return
	}

	writeAudit(c, h.audit, "service_updated", "service", svc.ID, nil)
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	res := h.db.WithContext(c.Request.Context()).
		Where("id = ?", c.Param("id")).
		Delete(&models.Service{})
	if res.Error != nil {
		fail(c, res.Error, "failed_to_delete_service")
		return
	}
	if res.RowsAffected == 0 {
		fail(c, httperr.ErrBusiness("service_not_found"), "")
		return
	}

	writeAudit(c, h.audit, "service_deleted", "service", c.Param("id"), nil)
	httpresp.NoContent(c)
}

func (h *ServiceHandler) load(c *gin.Context) (*models.Service, bool) {
	var svc models.Service
	if err := h.db.WithContext(c.Request.Context()).
		Where("id = ?", c.Param("id")).
		First(&svc).Error; err != nil {
		fail(c, notFound(err, "service_not_found"), "failed_to_load_service")
		return nil, false
	}
	return &svc, true
}

// nameAvailable rejects a service name already used by another service,
// ignoring case.
func (h *ServiceHandler) nameAvailable(c *gin.Context, name, excludeID, fallbackCode string) bool {
	q := h.db.WithContext(c.Request.Context()).
		Model(&models.Service{}).
		Where("LOWER(name) = ?", strings.ToLower(name))
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		fail(c, err, fallbackCode)
		return false
	}
	if count > 0 {
		fail(c, httperr.ErrBusiness("duplicate_name"), "")
		return false
	}
	return true
}
