package roster

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/dmitrijs2005/roster/internal/common"
)

// Field names a validated form field.
type Field string

const (
	FieldFirstName  Field = "firstName"
	FieldLastName   Field = "lastName"
	FieldRollNumber Field = "rollNumber"
	FieldEmail      Field = "email"
	FieldDepartment Field = "department"
)

// FieldOrder is the order in which fields are shown on a form.
var FieldOrder = []Field{FieldFirstName, FieldLastName, FieldRollNumber, FieldEmail, FieldDepartment}

// emailRe treats Unicode separators, vertical tab and BOM as whitespace
// alongside the ASCII \s class.
var emailRe = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// ValidationErrors maps a field to its error message. Empty means valid.
type ValidationErrors map[Field]string

// Err returns nil for an empty map and a *ValidationError otherwise.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return &ValidationError{Fields: v}
}

// ValidationError carries the per-field messages of a rejected form.
type ValidationError struct {
	Fields ValidationErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[Field(k)]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == common.ErrValidation
}

// Validate checks every field independently and returns all failures.
func Validate(f Fields) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(f.FirstName) == "" {
		errs[FieldFirstName] = "First name is required"
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs[FieldLastName] = "Last name is required"
	}
	if strings.TrimSpace(f.RollNo) == "" {
		errs[FieldRollNumber] = "Roll number is required"
	}

	switch {
	case strings.TrimSpace(f.Email) == "":
		errs[FieldEmail] = "Email is required"
	case !emailRe.MatchString(f.Email):
		errs[FieldEmail] = "Please enter a valid email address"
	}

	switch {
	case f.Department == "":
		errs[FieldDepartment] = "Department is required"
	case !IsDepartment(f.Department):
		errs[FieldDepartment] = "Please select a valid department"
	}

	return errs
}
