package formval

// RuleDef is the raw, uncompiled form of a single rule: the registry name
// and its positional arguments. For ordinary rules the last argument is
// always the failure message; the rule constructors (Required, Min, Ext,
// Validator, ...) produce well-formed definitions, and schema documents
// decode into the same shape.
type RuleDef struct {
	Name string
	Args []any
}

// Field pairs a field name with its ordered rule definitions.
type Field struct {
	Name  string
	Rules []RuleDef
}

// F declares a field and its rules. Rule order is preserved: failure
// messages for the field are reported in this order.
func F(name string, rules ...RuleDef) Field {
	return Field{Name: name, Rules: rules}
}

// Schema is a compiled set of field rules. Compilation validates every
// rule definition once, so schemas that reach validation are structurally
// sound; a Schema is immutable and safe for concurrent use.
type Schema struct {
	fields []compiledField
	index  map[string]int
}

type compiledField struct {
	name     string
	required bool
	rules    []compiledRule
}

// compiledRule carries one evaluator per value kind. A nil side means the
// rule has no meaning for that kind; hitting it at evaluation time is a
// schema error. Custom validator rules derive their message from the
// function's return value instead of a declared message.
type compiledRule struct {
	name    string
	message string
	scalar  func(value any, data Data) bool
	file    func(file File, data Data) bool
	custom  ValidatorFunc
}

// New compiles a schema from field declarations. It returns a *SchemaError
// for unknown rule names, malformed parameters, unknown pattern names,
// duplicate fields, or duplicate rules.
func New(fields ...Field) (*Schema, error) {
	s := &Schema{
		fields: make([]compiledField, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for _, field := range fields {
		if _, exists := s.index[field.Name]; exists {
			return nil, newSchemaError(field.Name, "", ErrDuplicateField)
		}

		cf := compiledField{
			name:  field.Name,
			rules: make([]compiledRule, 0, len(field.Rules)),
		}

		seen := make(map[string]bool, len(field.Rules))
		for _, def := range field.Rules {
			if seen[def.Name] {
				return nil, newSchemaError(field.Name, def.Name, ErrDuplicateRule)
			}
			seen[def.Name] = true

			rule, err := compileRule(field.Name, def)
			if err != nil {
				return nil, err
			}
			if def.Name == ruleRequired {
				cf.required = true
			}
			cf.rules = append(cf.rules, rule)
		}

		s.index[field.Name] = len(s.fields)
		s.fields = append(s.fields, cf)
	}

	return s, nil
}

// MustNew is like New but panics on schema errors. Intended for schemas
// declared as package-level values.
func MustNew(fields ...Field) *Schema {
	s, err := New(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields returns the declared field names in declaration order.
func (s *Schema) Fields() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.name
	}
	return names
}

// Declares reports whether the schema declares the named field.
func (s *Schema) Declares(field string) bool {
	_, ok := s.index[field]
	return ok
}

func compileRule(field string, def RuleDef) (compiledRule, error) {
	switch def.Name {
	case ruleValidator:
		return compileValidatorRule(field, def)
	case ruleValidate:
		return compileValidateRule(field, def)
	}

	// Ordinary rules carry their message as the last argument.
	if len(def.Args) == 0 {
		return compiledRule{}, newSchemaError(field, def.Name, ErrEmptyMessage)
	}
	message, ok := def.Args[len(def.Args)-1].(string)
	if !ok || message == "" {
		return compiledRule{}, newSchemaError(field, def.Name, ErrEmptyMessage)
	}
	params := def.Args[:len(def.Args)-1]

	scalarCompile, haveScalar := scalarRules[def.Name]
	fileCompile, haveFile := fileRules[def.Name]
	if !haveScalar && !haveFile {
		return compiledRule{}, newSchemaError(field, def.Name, ErrUnknownRule)
	}

	rule := compiledRule{name: def.Name, message: message}
	if haveScalar {
		check, err := scalarCompile(params)
		if err != nil {
			return compiledRule{}, newSchemaError(field, def.Name, err)
		}
		rule.scalar = check
	}
	if haveFile {
		check, err := fileCompile(params)
		if err != nil {
			return compiledRule{}, newSchemaError(field, def.Name, err)
		}
		rule.file = check
	}
	return rule, nil
}
