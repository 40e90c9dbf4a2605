// Package forms holds the drafts edited in the console's create and edit dialogs.
// A draft is submitted to the mutation layer only once its required fields are present.
package forms

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/examdesk/admin-console/internal/versioning"
	"github.com/go-playground/validator/v10"
)

// Kind names a form
type Kind string

const (
	KindCourse  Kind = "course"
	KindModule  Kind = "module"
	KindContent Kind = "content"
	KindVersion Kind = "version"
	KindExam    Kind = "exam"
)

// ParseKind converts a path segment into a form kind
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindCourse, KindModule, KindContent, KindVersion, KindExam:
		return k, nil
	default:
		return "", fmt.Errorf("unknown form '%s'", s)
	}
}

// FieldErrors maps a JSON field name to the reason it blocks submission
type FieldErrors map[string]string

// Error implements error
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, e[field])
	}
	return strings.Join(messages, "; ")
}

// Check is the submit gating state of a draft
type Check struct {
	CanSubmit bool        `json:"can_submit"`
	Errors    FieldErrors `json:"errors,omitempty"`
}

// Draft is implemented by every form draft
type Draft interface {
	// Kind returns the form the draft belongs to
	Kind() Kind
	// IsEdit reports whether the draft edits an existing entity
	IsEdit() bool
}

// bodyValidator is implemented by drafts with checks beyond struct tags
type bodyValidator interface {
	validateBody(errs FieldErrors)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// notblank rejects strings made only of whitespace
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterValidation("version_label", func(fl validator.FieldLevel) bool {
		_, err := versioning.ParseLabel(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate returns the reasons a draft cannot be submitted; nil when it can
func Validate(draft Draft) FieldErrors {
	errs := FieldErrors{}
	if err := validate.Struct(draft); err != nil {
		validationErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			errs["form"] = err.Error()
			return errs
		}
		for _, fe := range validationErrs {
			errs[fe.Field()] = fieldMessage(fe)
		}
	}
	if v, ok := draft.(bodyValidator); ok {
		v.validateBody(errs)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// CanSubmit reports whether every required field of the draft is present
func CanSubmit(draft Draft) bool {
	return Validate(draft) == nil
}

// CheckDraft returns the submit gating state of a draft
func CheckDraft(draft Draft) Check {
	errs := Validate(draft)
	return Check{CanSubmit: errs == nil, Errors: errs}
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "version_label":
		return fmt.Sprintf("%s must have the form MAJOR.MINOR", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
