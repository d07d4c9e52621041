package formval

import (
	"fmt"
	"regexp"
)

const ruleRequired = "required"

func init() {
	RegisterScalarRule(ruleRequired, compileScalarRequired)
	RegisterScalarRule("min", compileMin)
	RegisterScalarRule("max", compileMax)
	RegisterScalarRule("equal", compileEqual)
	RegisterScalarRule("notEqual", compileNotEqual)
	RegisterScalarRule("gt", compareRule(func(v, p float64) bool { return v > p }))
	RegisterScalarRule("gte", compareRule(func(v, p float64) bool { return v >= p }))
	RegisterScalarRule("lt", compareRule(func(v, p float64) bool { return v < p }))
	RegisterScalarRule("lte", compareRule(func(v, p float64) bool { return v <= p }))
	RegisterScalarRule("equalField", fieldRule(looseEq))
	RegisterScalarRule("notEqualField", fieldRule(func(v, o any) bool { return !looseEq(v, o) }))
	RegisterScalarRule("gtField", fieldCompareRule(func(v, o float64) bool { return v > o }))
	RegisterScalarRule("gteField", fieldCompareRule(func(v, o float64) bool { return v >= o }))
	RegisterScalarRule("ltField", fieldCompareRule(func(v, o float64) bool { return v < o }))
	RegisterScalarRule("lteField", fieldCompareRule(func(v, o float64) bool { return v <= o }))
	RegisterScalarRule("in", compileIn)
	RegisterScalarRule("notIn", compileNotIn)
	RegisterScalarRule("regexp", compileRegexp)
	RegisterScalarRule("pattern", compilePattern)
}

// Required declares that the field must have a non-empty value. For
// scalars this means truthy (non-empty string, non-zero number); for
// files, a non-empty name.
func Required(message string) RuleDef {
	return RuleDef{Name: ruleRequired, Args: []any{message}}
}

// Min declares a minimum length for the field's string form.
func Min(min int, message string) RuleDef {
	return RuleDef{Name: "min", Args: []any{min, message}}
}

// Max declares a maximum length for the field's string form.
func Max(max int, message string) RuleDef {
	return RuleDef{Name: "max", Args: []any{max, message}}
}

// Equal declares that the value must loosely equal the given one:
// numeric comparison when both sides are numeric, string comparison
// otherwise.
func Equal(to any, message string) RuleDef {
	return RuleDef{Name: "equal", Args: []any{to, message}}
}

// NotEqual is the negation of Equal.
func NotEqual(to any, message string) RuleDef {
	return RuleDef{Name: "notEqual", Args: []any{to, message}}
}

// Gt, Gte, Lt, Lte declare numeric comparisons against a threshold.
// A value that does not coerce to a number fails the rule.
func Gt(than any, message string) RuleDef  { return RuleDef{Name: "gt", Args: []any{than, message}} }
func Gte(than any, message string) RuleDef { return RuleDef{Name: "gte", Args: []any{than, message}} }
func Lt(than any, message string) RuleDef  { return RuleDef{Name: "lt", Args: []any{than, message}} }
func Lte(than any, message string) RuleDef { return RuleDef{Name: "lte", Args: []any{than, message}} }

// EqualField declares that the value must loosely equal another field's
// value from the same data record.
func EqualField(field, message string) RuleDef {
	return RuleDef{Name: "equalField", Args: []any{field, message}}
}

// NotEqualField is the negation of EqualField.
func NotEqualField(field, message string) RuleDef {
	return RuleDef{Name: "notEqualField", Args: []any{field, message}}
}

// GtField, GteField, LtField, LteField declare numeric comparisons
// against another field's value.
func GtField(field, message string) RuleDef {
	return RuleDef{Name: "gtField", Args: []any{field, message}}
}

func GteField(field, message string) RuleDef {
	return RuleDef{Name: "gteField", Args: []any{field, message}}
}

func LtField(field, message string) RuleDef {
	return RuleDef{Name: "ltField", Args: []any{field, message}}
}

func LteField(field, message string) RuleDef {
	return RuleDef{Name: "lteField", Args: []any{field, message}}
}

// In declares that the value must be a member of the allowed list.
func In(allowed []any, message string) RuleDef {
	return RuleDef{Name: "in", Args: []any{allowed, message}}
}

// NotIn declares that the value must not be a member of the list.
func NotIn(forbidden []any, message string) RuleDef {
	return RuleDef{Name: "notIn", Args: []any{forbidden, message}}
}

// Regexp declares that the value's string form must match the supplied
// pattern. Only available to schemas built in code.
func Regexp(re *regexp.Regexp, message string) RuleDef {
	return RuleDef{Name: "regexp", Args: []any{re, message}}
}

// Pattern declares that the value must match a named pattern from the
// pattern registry. Empty values pass trivially; declare Required
// alongside to reject emptiness.
func Pattern(name, message string) RuleDef {
	return RuleDef{Name: "pattern", Args: []any{name, message}}
}

func compileScalarRequired(params []any) (func(any, Data) bool, error) {
	if len(params) != 0 {
		return nil, ErrInvalidParams
	}
	return func(v any, _ Data) bool {
		return truthy(v)
	}, nil
}

func compileMin(params []any) (func(any, Data) bool, error) {
	min, err := oneNumber(params)
	if err != nil {
		return nil, err
	}
	return func(v any, _ Data) bool {
		return float64(length(v)) >= min
	}, nil
}

func compileMax(params []any) (func(any, Data) bool, error) {
	max, err := oneNumber(params)
	if err != nil {
		return nil, err
	}
	return func(v any, _ Data) bool {
		return float64(length(v)) <= max
	}, nil
}

func compileEqual(params []any) (func(any, Data) bool, error) {
	if len(params) != 1 {
		return nil, ErrInvalidParams
	}
	to := params[0]
	return func(v any, _ Data) bool {
		return looseEq(v, to)
	}, nil
}

func compileNotEqual(params []any) (func(any, Data) bool, error) {
	check, err := compileEqual(params)
	if err != nil {
		return nil, err
	}
	return func(v any, d Data) bool {
		return !check(v, d)
	}, nil
}

// compareRule builds a compiler for threshold comparisons. Operands that
// do not coerce to numbers fail the comparison, they never error.
func compareRule(cmp func(v, p float64) bool) ScalarCompiler {
	return func(params []any) (func(any, Data) bool, error) {
		threshold, err := oneNumber(params)
		if err != nil {
			return nil, err
		}
		return func(v any, _ Data) bool {
			n, ok := toFloat(v)
			if !ok {
				return false
			}
			return cmp(n, threshold)
		}, nil
	}
}

// fieldRule builds a compiler for cross-field comparisons under a
// scalar predicate. The other field is read from the same data record
// snapshot the value under test came from.
func fieldRule(cmp func(v, other any) bool) ScalarCompiler {
	return func(params []any) (func(any, Data) bool, error) {
		field, err := oneString(params)
		if err != nil {
			return nil, err
		}
		return func(v any, d Data) bool {
			return cmp(v, d[field])
		}, nil
	}
}

func fieldCompareRule(cmp func(v, other float64) bool) ScalarCompiler {
	return fieldRule(func(v, other any) bool {
		n, ok := toFloat(v)
		if !ok {
			return false
		}
		o, ok := toFloat(other)
		if !ok {
			return false
		}
		return cmp(n, o)
	})
}

func compileIn(params []any) (func(any, Data) bool, error) {
	list, err := oneList(params)
	if err != nil {
		return nil, err
	}
	return func(v any, _ Data) bool {
		return contains(list, v)
	}, nil
}

func compileNotIn(params []any) (func(any, Data) bool, error) {
	check, err := compileIn(params)
	if err != nil {
		return nil, err
	}
	return func(v any, d Data) bool {
		return !check(v, d)
	}, nil
}

func compileRegexp(params []any) (func(any, Data) bool, error) {
	if len(params) != 1 {
		return nil, ErrInvalidParams
	}
	re, ok := params[0].(*regexp.Regexp)
	if !ok {
		return nil, fmt.Errorf("%w: regexp expects a *regexp.Regexp, got %T", ErrInvalidParams, params[0])
	}
	return func(v any, _ Data) bool {
		return re.MatchString(str(v))
	}, nil
}

func compilePattern(params []any) (func(any, Data) bool, error) {
	name, err := oneString(params)
	if err != nil {
		return nil, err
	}
	re, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return func(v any, _ Data) bool {
		s := str(v)
		if s == "" {
			return true
		}
		return re.MatchString(s)
	}, nil
}

func oneNumber(params []any) (float64, error) {
	if len(params) != 1 {
		return 0, ErrInvalidParams
	}
	n, ok := toFloat(params[0])
	if !ok {
		return 0, fmt.Errorf("%w: expected a numeric parameter, got %T", ErrInvalidParams, params[0])
	}
	return n, nil
}

func oneString(params []any) (string, error) {
	if len(params) != 1 {
		return "", ErrInvalidParams
	}
	s, ok := params[0].(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%w: expected a non-empty string parameter, got %#v", ErrInvalidParams, params[0])
	}
	return s, nil
}

func oneList(params []any) ([]any, error) {
	if len(params) != 1 {
		return nil, ErrInvalidParams
	}
	list, ok := toList(params[0])
	if !ok {
		return nil, fmt.Errorf("%w: expected a list parameter, got %T", ErrInvalidParams, params[0])
	}
	return list, nil
}
