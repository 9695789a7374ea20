package request

import (
	"errors"
	"strings"
	"sync"

	"shareit/internal/domain/booking"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	TagNotBlank     = "not_blank"
	TagBookingState = "booking_state"
)

var registerOnce sync.Once

// RegisterValidations installs the custom tags on gin's validator engine.
func RegisterValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation(TagNotBlank, notBlank)
		_ = v.RegisterValidation(TagBookingState, bookingState)
	})
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func bookingState(fl validator.FieldLevel) bool {
	_, err := booking.ParseState(fl.Field().String())
	return err == nil
}

// FailedOn reports whether err is a validation failure on the named struct field.
func FailedOn(err error, field string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.StructField() == field {
			return true
		}
	}
	return false
}
