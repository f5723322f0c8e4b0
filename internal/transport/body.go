package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/danisworo/workdesk/internal"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// DecodeJSONBody decodes the request body into dest, rejecting unknown fields,
// then runs struct-tag validation. Returns an *internal.AppError on failure.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return internal.NewValidationError("invalid request body", internal.ErrCodeValidationFailed).WithCause(err)
	}

	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *internal.AppError {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return internal.NewValidationError("validation failed", internal.ErrCodeValidationFailed).WithCause(err)
	}

	fieldErrors := make([]internal.ValidationError, 0, len(errs))
	for _, fieldErr := range errs {
		fieldErrors = append(fieldErrors, internal.ValidationError{
			Field:   fieldErr.Field(),
			Message: fmt.Sprintf("%s %s", fieldErr.Field(), validationMessage(fieldErr)),
			Code:    string(internal.ErrCodeValidationFailed),
		})
	}

	appErr := internal.NewValidationError("Validation failed", internal.ErrCodeValidationFailed)
	return appErr.WithDetails(internal.ValidationErrors{Errors: fieldErrors})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
