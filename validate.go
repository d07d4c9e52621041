package formval

// ValidateForm validates every field the schema declares against the data
// record and returns the aggregated report. Data keys the schema does not
// declare are never inspected. The error return carries schema problems
// only (InvalidSchema); validation failures are report content, not
// errors.
func (s *Schema) ValidateForm(data Data) (Report, error) {
	report := make(Report)
	for i := range s.fields {
		messages, err := s.fields[i].validate(data)
		if err != nil {
			return nil, err
		}
		if len(messages) > 0 {
			report[s.fields[i].name] = messages
		}
	}
	return report, nil
}

// ValidateField validates a single declared field, typically after it
// changed, and returns a partial report holding at most that field's
// entry. A field the schema does not declare yields an empty report.
func (s *Schema) ValidateField(field string, data Data) (Report, error) {
	report := make(Report)
	i, ok := s.index[field]
	if !ok {
		return report, nil
	}
	messages, err := s.fields[i].validate(data)
	if err != nil {
		return nil, err
	}
	if len(messages) > 0 {
		report[field] = messages
	}
	return report, nil
}

func (f *compiledField) validate(data Data) ([]string, error) {
	value := data[f.name]

	// Optional-field short-circuit: without a required rule, an empty
	// scalar is vacuously valid and no rule runs. Files never take this
	// path; their emptiness is the required rule's concern.
	if !f.required && isEmptyScalar(value) {
		return nil, nil
	}

	file, isFile := asFile(value)
	emptyScalar := isEmptyScalar(value)

	var messages []string
	for i := range f.rules {
		rule := &f.rules[i]

		if rule.custom != nil {
			if msg, ok := rule.custom(value, data).(string); ok && msg != "" {
				messages = append(messages, msg)
			}
			continue
		}

		var pass bool
		switch {
		case isFile:
			if rule.file == nil {
				return nil, newSchemaError(f.name, rule.name, ErrRuleNotApplicable)
			}
			pass = rule.file(file, data)
		default:
			if rule.scalar == nil {
				// A file-only rule has nothing to check until the host
				// supplies a file: an absent or empty value is the
				// required rule's concern, not a schema bug.
				if emptyScalar {
					continue
				}
				return nil, newSchemaError(f.name, rule.name, ErrRuleNotApplicable)
			}
			pass = rule.scalar(value, data)
		}
		if !pass {
			messages = append(messages, rule.message)
		}
	}
	return messages, nil
}
