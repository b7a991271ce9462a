package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slot struct {
	Date string `validate:"civildate"`
	Time string `validate:"hhmm"`
	Day  int    `validate:"weekday"`
}

func TestRegisterOn(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	assert.NoError(t, v.Struct(slot{Date: "2026-10-19", Time: "09:30", Day: 0}))
	assert.NoError(t, v.Struct(slot{Date: "2026-02-28", Time: "23:59", Day: 6}))

	bad := []slot{
		{Date: "2026-2-28", Time: "09:30", Day: 1},
		{Date: "2026-02-30", Time: "09:30", Day: 1},
		{Date: "2026-10-19", Time: "9:30", Day: 1},
		{Date: "2026-10-19", Time: "24:00", Day: 1},
		{Date: "2026-10-19", Time: "09:30", Day: 7},
		{Date: "2026-10-19", Time: "09:30", Day: -1},
	}
	for _, s := range bad {
		assert.Error(t, v.Struct(s), "%+v", s)
	}
}
