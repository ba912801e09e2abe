// Package validation decodes JSON payloads into typed request structs and
// reports every failing field at once.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	apperrors "github.com/nindium/bookclub-server/internal/errors"
)

var (
	validate     = newValidator()
	strictPolicy = bluemonday.StrictPolicy()
)

// FieldError describes one failing field of a payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Normalizer is implemented by request structs that trim or sanitise their
// fields between decoding and validation.
type Normalizer interface {
	Normalize()
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return v
}

// Decode reads a JSON body into dst, normalises it and validates it.
func Decode(r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return apperrors.ValidationError("Invalid request body").WithCause(err)
	}
	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
	}
	return Struct(dst)
}

// Struct validates v and returns a VALIDATION_ERROR whose details list all
// failing fields, or nil.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.ValidationError("Validation failed").WithCause(err)
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return apperrors.ValidationError("Validation failed").WithDetails(details)
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Valid email is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return fmt.Sprintf("%s is invalid", field)
}

// ID checks a path identifier before it reaches the store.
func ID(id string) error {
	if err := uuid.Validate(id); err != nil {
		return apperrors.InvalidInput("id", "must be a valid id")
	}
	return nil
}

// maxSanitizePasses bounds how many layers of entity encoding are peeled.
const maxSanitizePasses = 4

// SanitizeText strips any markup from user supplied text and returns it as
// plain text. Entity-encoded tags are decoded before stripping so they cannot
// come back as live markup, and the result is stable under another pass.
func SanitizeText(s string) string {
	for range maxSanitizePasses {
		clean := html.UnescapeString(strictPolicy.Sanitize(html.UnescapeString(s)))
		if clean == s {
			return strings.TrimSpace(s)
		}
		s = clean
	}
	// Still changing: keep the escaped form rather than risk decoded markup.
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// OptionalText sanitises *s and maps blank values to nil.
func OptionalText(s *string) *string {
	if s == nil {
		return nil
	}
	clean := SanitizeText(*s)
	if clean == "" {
		return nil
	}
	return &clean
}
