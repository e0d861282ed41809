package registry

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ebtesamty/dashboard-api/internal/model"
)

// Egyptian mobile numbers: 01 followed by nine digits.
var egyptianPhone = regexp.MustCompile(`^01[0-9]{9}$`)

func newAdmissionValidator() *validator.Validate {
	v := validator.New()

	// Registration only fails for a blank tag name, which these are not.
	_ = v.RegisterValidation("egphone", func(fl validator.FieldLevel) bool {
		return egyptianPhone.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(model.DateLayout, fl.Field().String())
		return err == nil
	})

	return v
}
