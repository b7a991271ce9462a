package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/snapshot"
)

type SnapshotHandler struct {
	svc   *snapshot.Service
	audit *audit.Dispatcher
}

func NewSnapshotHandler(svc *snapshot.Service, audit *audit.Dispatcher) *SnapshotHandler {
	return &SnapshotHandler{svc: svc, audit: audit}
}

func (h *SnapshotHandler) Export(c *gin.Context) {
	counts, err := h.svc.Export(c.Request.Context())
	if err != nil {
		fail(c, err, "snapshot_export_failed")
		return
	}

	writeAudit(c, h.audit, "snapshot_exported", "snapshot", "", counts)
	httpresp.OK(c, gin.H{"exported": counts})
}

func (h *SnapshotHandler) Import(c *gin.Context) {
	res, err := h.svc.Import(c.Request.Context())
	if err != nil {
		fail(c, err, "snapshot_import_failed")
		return
	}

	writeAudit(c, h.audit, "snapshot_imported", "snapshot", "", res)
	httpresp.OK(c, res)
}
