package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"activation-engine/internal/engine"
)

// Request bodies. get-tags takes a bare engine.UserState.

type RankTasksRequest struct {
	UserState *engine.UserState `json:"user_state" validate:"required"`
	Tasks     []engine.Task     `json:"tasks" validate:"required,dive"`
}

type PromptCategoryRequest struct {
	Mood       string   `json:"mood,omitempty"`
	Energy     int      `json:"energy" validate:"required,min=1,max=5"`
	Categories []string `json:"categories" validate:"required,dive,required"`
}

var ErrInvalidJSON = errors.New("invalid json")

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a body parses but does not fit its schema.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode reads one JSON document from r into dst and validates it.
// Syntax problems wrap ErrInvalidJSON; shape problems are *ValidationError.
func Decode(r io.Reader, dst any) error {
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			fe := FieldError{
				Field:   typeErr.Field,
				Message: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value),
			}
			if fe.Field == "" {
				fe = FieldError{Field: "body", Message: "expected object, got " + typeErr.Value}
			}
			return &ValidationError{Fields: []FieldError{fe}}
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		out := &ValidationError{}
		for _, fe := range verrs {
			out.Fields = append(out.Fields, FieldError{
				Field:   fieldPath(fe.Namespace()),
				Message: fieldMessage(fe),
			})
		}
		return out
	}
	return nil
}

// fieldPath drops the root struct name: "RankTasksRequest.tasks[0].name" -> "tasks[0].name".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}
