// Package validate wraps go-playground/validator so request structs are
// checked declaratively via struct tags and every failure is reported at
// once as a list of field errors.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Banup3/TaskManager/pkg/tasksdk"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json names so errors match the wire format.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Validate NullString fields against their inner value. A null counts as
	// empty so omitempty skips it.
	val.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if ns, ok := field.Interface().(tasksdk.NullString); ok && ns.Valid {
			return ns.Value
		}
		return nil
	}, tasksdk.NullString{})

	return val
}

// Struct validates s against its struct tags. It returns nil when valid,
// otherwise a 400 APIError carrying one entry per failed field.
func Struct(s any) *tasksdk.APIError {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError means the caller passed a non-struct.
		return tasksdk.ErrInvalidBody
	}

	fields := make([]tasksdk.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, tasksdk.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return tasksdk.NewValidationError(fields)
}

// messageFor renders a human-readable message for a single tag failure.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "datetime":
		return "must be a valid RFC3339 timestamp"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
