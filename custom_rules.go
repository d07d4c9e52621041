package formval

import "fmt"

const (
	ruleValidator = "validator"
	ruleValidate  = "validate"
)

// ValidatorFunc is a caller-supplied validator with self-derived
// messages. A non-empty string return is the failure message for the
// field — including the literal "false", which is a message, not a
// boolean. Any other return (nil, bool, empty string) means the value
// passed. The function receives the raw field value (File for uploads)
// and the full data record.
type ValidatorFunc func(value any, data Data) any

// CheckFunc is a caller-supplied predicate used with Validate: true means
// the value passed.
type CheckFunc func(value any, data Data) bool

// CheckParamsFunc is the ValidateWith form of CheckFunc, receiving an
// auxiliary parameter value declared in the schema.
type CheckParamsFunc func(value any, params any, data Data) bool

// Validator declares a custom rule whose failure message comes from the
// function's own return value. Panics inside fn propagate to the
// ValidateField/ValidateForm caller.
func Validator(fn ValidatorFunc) RuleDef {
	return RuleDef{Name: ruleValidator, Args: []any{fn}}
}

// Validate declares a custom predicate with a declared failure message.
func Validate(fn CheckFunc, message string) RuleDef {
	return RuleDef{Name: ruleValidate, Args: []any{fn, message}}
}

// ValidateWith declares a custom predicate that also receives an
// auxiliary parameter value.
func ValidateWith(fn CheckParamsFunc, params any, message string) RuleDef {
	return RuleDef{Name: ruleValidate, Args: []any{fn, params, message}}
}

func compileValidatorRule(field string, def RuleDef) (compiledRule, error) {
	if len(def.Args) != 1 {
		return compiledRule{}, newSchemaError(field, def.Name, ErrInvalidParams)
	}

	var fn ValidatorFunc
	switch f := def.Args[0].(type) {
	case ValidatorFunc:
		fn = f
	case func(value any, data Data) any:
		fn = f
	default:
		return compiledRule{}, newSchemaError(field, def.Name,
			fmt.Errorf("%w: validator expects a ValidatorFunc, got %T", ErrInvalidParams, def.Args[0]))
	}

	return compiledRule{name: def.Name, custom: fn}, nil
}

func compileValidateRule(field string, def RuleDef) (compiledRule, error) {
	if len(def.Args) != 2 && len(def.Args) != 3 {
		return compiledRule{}, newSchemaError(field, def.Name, ErrInvalidParams)
	}

	message, ok := def.Args[len(def.Args)-1].(string)
	if !ok || message == "" {
		return compiledRule{}, newSchemaError(field, def.Name, ErrEmptyMessage)
	}

	var check func(v any, d Data) bool
	if len(def.Args) == 2 {
		switch f := def.Args[0].(type) {
		case CheckFunc:
			check = f
		case func(value any, data Data) bool:
			check = f
		default:
			return compiledRule{}, newSchemaError(field, def.Name,
				fmt.Errorf("%w: validate expects a CheckFunc, got %T", ErrInvalidParams, def.Args[0]))
		}
	} else {
		params := def.Args[1]
		switch f := def.Args[0].(type) {
		case CheckParamsFunc:
			check = func(v any, d Data) bool { return f(v, params, d) }
		case func(value any, params any, data Data) bool:
			check = func(v any, d Data) bool { return f(v, params, d) }
		default:
			return compiledRule{}, newSchemaError(field, def.Name,
				fmt.Errorf("%w: validate expects a CheckParamsFunc, got %T", ErrInvalidParams, def.Args[0]))
		}
	}

	return compiledRule{
		name:    def.Name,
		message: message,
		scalar:  check,
		file:    func(f File, d Data) bool { return check(f, d) },
	}, nil
}
