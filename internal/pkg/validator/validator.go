package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their json name so error details match the wire shape.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate returns a field->failed-rule map, or nil when the struct is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
