package httperr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("create appointment: %w", ErrBusiness("time_conflict"))

	assert.True(t, IsBusiness(err, "time_conflict"))
	assert.False(t, IsBusiness(err, "invalid_date"))
	assert.False(t, IsBusiness(fmt.Errorf("plain"), "time_conflict"))
}

func TestMessage_FormatsArgs(t *testing.T) {
	assert.Equal(t,
		"Nhân viên chỉ làm việc từ 09:00 đến 17:00!",
		Message("outside_working_hours", "09:00", "17:00"),
	)
	assert.Equal(t, fallbackMessage, Message("unknown_code"))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusConflict, StatusFor("time_conflict"))
	assert.Equal(t, http.StatusNotFound, StatusFor("appointment_not_found"))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("nope"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(nil))
}
