package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/ErlanBelekov/fittrack/internal/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Custom struct tags backed by the validators in this package.
const (
	TagFullName = "fullname"
	TagGoal     = "fitgoal"
	TagTextMax  = "textmax"
)

// Register adds the custom tags to v and reports field errors under their
// JSON names.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	err := v.RegisterValidation(TagFullName, func(fl validator.FieldLevel) bool {
		return ValidateFullName(fl.Field().String()).Valid
	})
	if err != nil {
		return err
	}
	// textmax=N caps a string at N UTF-16 code units, matching maxLength on
	// the client inputs.
	err = v.RegisterValidation(TagTextMax, func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return textLength(fl.Field().String()) <= limit
	})
	if err != nil {
		return err
	}
	return v.RegisterValidation(TagGoal, func(fl validator.FieldLevel) bool {
		return domain.IsFitnessGoal(fl.Field().String())
	})
}

// RegisterGin installs the custom tags on gin's default binding validator.
func RegisterGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not validator/v10")
	}
	return Register(v)
}

// ToFieldErrors turns a binding error into per-field messages. Custom tags
// reuse the exact messages of the underlying validators.
func ToFieldErrors(err error) FieldErrors {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return FieldErrors{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"payload": "invalid payload"}
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = formatFieldError(fe)
	}
	return out
}

func formatFieldError(fe validator.FieldError) string {
	value, _ := fe.Value().(string)
	switch fe.Tag() {
	case TagFullName:
		return ValidateFullName(value).Message
	case TagTextMax:
		return "must be at most " + fe.Param() + " characters long"
	case TagGoal:
		return "must be one of: " + strings.Join(domain.FitnessGoals, ", ")
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters long"
		}
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " items"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters long"
		}
		if fe.Kind() == reflect.Slice {
			return "must contain at most " + fe.Param() + " items"
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "unique":
		return "must contain unique items"
	}
	return "is invalid"
}
