package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/arjunpx/fuelbill-api/pkg/apperror"
)

// GetSessionID extracts the session ID the session middleware stored on
// the Gin context
func GetSessionID(c *gin.Context) *uuid.UUID {
	sessionVal, exists := c.Get("session_id")
	if !exists {
		return nil
	}
	sessionID, ok := sessionVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &sessionID
}

// FieldErrors converts binding failures into per-field errors so the
// form can highlight the offending inputs. Non-validator errors come
// back as a single unnamed entry.
func FieldErrors(err error) []apperror.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []apperror.FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, apperror.FieldError{
			Field:   fieldName(fe),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return name
	}
	// Struct field names are exported; the wire format is camelCase.
	return strings.ToLower(name[:1]) + name[1:]
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "min":
		return "Must be at least " + fe.Param()
	case "len":
		return "Must be exactly " + fe.Param() + " characters"
	case "numeric":
		return "Must contain only digits"
	case "startswith":
		return "Must start with " + fe.Param()
	default:
		return "Invalid value"
	}
}
