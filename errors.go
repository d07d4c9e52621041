package formval

import (
	"errors"
	"fmt"
)

// Schema authoring errors. These indicate a bug in the schema, not a
// failed validation: a failed validation is reported through Report.
var (
	// ErrUnknownRule is returned when a schema declares a rule name that
	// is not present in any registry.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrUnknownPattern is returned when a pattern rule references a name
	// absent from the pattern registry.
	ErrUnknownPattern = errors.New("unknown named pattern")

	// ErrInvalidParams is returned when rule parameters have the wrong
	// shape or type for the declared rule.
	ErrInvalidParams = errors.New("invalid rule parameters")

	// ErrEmptyMessage is returned when a rule that requires a declared
	// failure message is given an empty one.
	ErrEmptyMessage = errors.New("missing failure message")

	// ErrDuplicateField is returned when a schema declares the same field twice.
	ErrDuplicateField = errors.New("duplicate field in schema")

	// ErrDuplicateRule is returned when a field declares the same rule twice.
	ErrDuplicateRule = errors.New("duplicate rule for field")

	// ErrRuleNotApplicable is returned when a rule meets a value kind it
	// has no evaluator for, e.g. a string-length rule applied to a file.
	ErrRuleNotApplicable = errors.New("rule not applicable to value kind")

	// ErrInvalidDocument is returned when a schema document does not have
	// the expected mapping shape.
	ErrInvalidDocument = errors.New("invalid schema document")
)

// SchemaError describes a structural problem in a schema, located by field
// and rule name. It wraps one of the sentinel errors above.
type SchemaError struct {
	Field string
	Rule  string
	Err   error
}

func (e *SchemaError) Error() string {
	switch {
	case e.Field == "" && e.Rule == "":
		return fmt.Sprintf("invalid schema: %v", e.Err)
	case e.Rule == "":
		return fmt.Sprintf("invalid schema: field %q: %v", e.Field, e.Err)
	default:
		return fmt.Sprintf("invalid schema: field %q, rule %q: %v", e.Field, e.Rule, e.Err)
	}
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

func newSchemaError(field, rule string, err error) *SchemaError {
	return &SchemaError{Field: field, Rule: rule, Err: err}
}

// IsSchemaError reports whether err is (or wraps) a *SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
