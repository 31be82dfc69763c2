package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/drivingschool-api/internal/models"
)

var customValidations = map[string]validator.Func{
	"isodate": func(fl validator.FieldLevel) bool {
		return models.ValidDate(fl.Field().String())
	},
	"clocktime": func(fl validator.FieldLevel) bool {
		return models.ValidTime(fl.Field().String())
	},
	"class_type": func(fl validator.FieldLevel) bool {
		return models.ClassType(fl.Field().String()).Valid()
	},
}

// NewValidator returns a validator with the domain tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	registerValidations(v)
	return v
}

func registerValidations(v *validator.Validate) {
	for tag, fn := range customValidations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation %s: %v", tag, err))
		}
	}
}
