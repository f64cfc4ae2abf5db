package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Acon1tum/hris-test-sub000/internal"
)

var (
	slugPattern           = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	permissionSlugPattern = regexp.MustCompile(`^[a-z0-9_]+:[a-z0-9_]+$`)
	emailPattern          = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	timeOfDayPattern      = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// Builder accumulates per-field validation failures and produces a single
// AppError with every message keyed by field path.
type Builder struct {
	fields internal.FieldErrors
}

func NewValidator() *Builder {
	return &Builder{fields: internal.FieldErrors{}}
}

func (b *Builder) Require(field, value string) *Builder {
	if strings.TrimSpace(value) == "" {
		b.fields.Add(field, fmt.Sprintf("%s is required", field))
	}
	return b
}

func (b *Builder) RequireID(field string, value int64) *Builder {
	if value <= 0 {
		b.fields.Add(field, fmt.Sprintf("%s is required", field))
	}
	return b
}

func (b *Builder) MaxLength(field, value string, max int) *Builder {
	if len(value) > max {
		b.fields.Add(field, fmt.Sprintf("%s must not exceed %d characters", field, max))
	}
	return b
}

func (b *Builder) MinLength(field, value string, min int) *Builder {
	if value != "" && len(value) < min {
		b.fields.Add(field, fmt.Sprintf("%s must be at least %d characters", field, min))
	}
	return b
}

func (b *Builder) MinInt(field string, value, min int) *Builder {
	if value < min {
		b.fields.Add(field, fmt.Sprintf("%s must be at least %d", field, min))
	}
	return b
}

func (b *Builder) MaxInt(field string, value, max int) *Builder {
	if value > max {
		b.fields.Add(field, fmt.Sprintf("%s must not exceed %d", field, max))
	}
	return b
}

// Slug validates the kebab-case form used by modules, organizations and other
// sluggable records.
func (b *Builder) Slug(field, value string) *Builder {
	if value != "" && !slugPattern.MatchString(value) {
		b.fields.Add(field, fmt.Sprintf("%s must be lowercase letters, digits and hyphens", field))
	}
	return b
}

// PermissionSlug validates the resource:action shape of permission slugs.
func (b *Builder) PermissionSlug(field, value string) *Builder {
	if value != "" && !permissionSlugPattern.MatchString(value) {
		b.fields.Add(field, fmt.Sprintf("%s must have the form resource:action", field))
	}
	return b
}

func (b *Builder) Email(field, value string) *Builder {
	if value != "" && !emailPattern.MatchString(value) {
		b.fields.Add(field, fmt.Sprintf("%s must be a valid email address", field))
	}
	return b
}

// TimeOfDay validates HH:MM clock values used by shifts.
func (b *Builder) TimeOfDay(field, value string) *Builder {
	if value != "" && !timeOfDayPattern.MatchString(value) {
		b.fields.Add(field, fmt.Sprintf("%s must be a HH:MM time", field))
	}
	return b
}

func (b *Builder) Custom(field string, ok bool, message string) *Builder {
	if !ok {
		b.fields.Add(field, message)
	}
	return b
}

// Validate returns nil when every check passed, otherwise a field-keyed
// validation AppError.
func (b *Builder) Validate() error {
	if b.fields.Empty() {
		return nil
	}
	return internal.NewFieldValidationError(b.fields)
}
