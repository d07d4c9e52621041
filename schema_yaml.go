package formval

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML compiles a schema from a YAML document of the form
//
//	login:
//	  required: Required
//	  min: [4, "Too short"]
//	password:
//	  equalField: [login, "Passwords must match"]
//	avatar:
//	  ext: [png, "Must be a png"]
//
// Field and rule declaration order follows the document. A bare string
// param is the failure message (the required shape); a sequence holds the
// rule's arguments with the message last. Rules that take function or
// compiled-regexp values (validator, validate, regexp) cannot appear in
// documents and fail compilation.
//
// JSON is a subset of YAML, so JSON documents parse through the same
// entry point.
func ParseYAML(doc []byte) (*Schema, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(doc, &root); err != nil {
		return nil, newSchemaError("", "", fmt.Errorf("%w: %v", ErrInvalidDocument, err))
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, newSchemaError("", "", fmt.Errorf("%w: empty document", ErrInvalidDocument))
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, newSchemaError("", "", fmt.Errorf("%w: top level must be a mapping of fields", ErrInvalidDocument))
	}

	fields := make([]Field, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		name := mapping.Content[i].Value
		field, err := decodeField(name, mapping.Content[i+1])
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	return New(fields...)
}

func decodeField(name string, node *yaml.Node) (Field, error) {
	if node.Kind != yaml.MappingNode {
		return Field{}, newSchemaError(name, "", fmt.Errorf("%w: field rules must be a mapping", ErrInvalidDocument))
	}

	field := Field{Name: name, Rules: make([]RuleDef, 0, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		ruleName := node.Content[i].Value

		switch ruleName {
		case ruleValidator, ruleValidate, "regexp":
			return Field{}, newSchemaError(name, ruleName,
				fmt.Errorf("%w: rule takes a function value and cannot appear in a document", ErrInvalidParams))
		}

		args, err := decodeArgs(name, ruleName, node.Content[i+1])
		if err != nil {
			return Field{}, err
		}
		field.Rules = append(field.Rules, RuleDef{Name: ruleName, Args: args})
	}
	return field, nil
}

func decodeArgs(field, rule string, node *yaml.Node) ([]any, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		// A bare scalar is the failure message alone.
		v, err := decodeValue(node)
		if err != nil {
			return nil, newSchemaError(field, rule, err)
		}
		return []any{v}, nil
	case yaml.SequenceNode:
		args := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := decodeValue(item)
			if err != nil {
				return nil, newSchemaError(field, rule, err)
			}
			args = append(args, v)
		}
		return args, nil
	default:
		return nil, newSchemaError(field, rule,
			fmt.Errorf("%w: rule params must be a scalar message or a sequence", ErrInvalidDocument))
	}
}

func decodeValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return v, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := decodeValue(item)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	default:
		return nil, fmt.Errorf("%w: unsupported value shape", ErrInvalidDocument)
	}
}
