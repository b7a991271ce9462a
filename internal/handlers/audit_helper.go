package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
)

func writeAudit(
	c *gin.Context,
	d *audit.Dispatcher,
	action string,
	entity string,
	entityID string,
	meta any,
) {
	d.Dispatch(c.Request.Context(), audit.Event{
		UserID:   middleware.UserID(c),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: meta,
	})
}

// fail renders err: business errors with their registered status, anything
// else as a 500 carrying fallbackCode. The cause is attached for AccessLog.
func fail(c *gin.Context, err error, fallbackCode string) {
	if _, ok := httperr.AsBusiness(err); !ok {
		_ = c.Error(err)
	}
	httperr.Business(c, err, fallbackCode)
}

func badRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", httperr.Message("invalid_request"))
}

func notFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(code)
	}
	return err
}
