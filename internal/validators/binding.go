package validators

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register adds the salon field tags to gin's validator:
//
//	hhmm      "09:30"
//	civildate "2026-10-19"
//	weekday   0 (Sunday) .. 6
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	for tag, fn := range map[string]validator.Func{
		"hhmm":      layout("15:04"),
		"civildate": layout("2006-01-02"),
		"weekday":   weekday,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func layout(l string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != len(l) {
			return false
		}
		_, err := time.Parse(l, s)
		return err == nil
	}
}

func weekday(fl validator.FieldLevel) bool {
	d := fl.Field().Int()
	return d >= 0 && d <= 6
}
