package appointment

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

var tracer = otel.Tracer("github.com/BruksfildServices01/salon-scheduler/usecase/appointment")

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// notFoundAs maps a missing row to the business code the handler renders.
func notFoundAs(err error, code string) error {
	if isNotFound(err) {
		return httperr.ErrBusiness(code)
	}
	return err
}

// recordErr marks the span failed for infrastructure errors only; rule
// violations are expected outcomes.
func recordErr(span trace.Span, err error) error {
	if be, ok := httperr.AsBusiness(err); ok {
		span.SetAttributes(attribute.String("business.code", be.Code))
		return err
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
