package formval

import "sort"

// Data is a flat record of field values collected by the host, keyed by
// field name. A value is either a scalar (string, number, bool) or a File.
type Data map[string]any

// File carries the metadata of an uploaded file. The engine never touches
// file content; the host extracts the triple from its form representation.
type File struct {
	// Name is the original filename provided by the client.
	Name string

	// Size is the size of the file in bytes.
	Size int64

	// Type is the MIME type of the file.
	Type string
}

// Ext returns the extension of the file name: the substring after the
// final dot. A name without a dot yields the whole name.
func (f File) Ext() string {
	for i := len(f.Name) - 1; i >= 0; i-- {
		if f.Name[i] == '.' {
			return f.Name[i+1:]
		}
	}
	return f.Name
}

// Report maps field names to their ordered failure messages. A field
// absent from the report is valid; a present field always has at least
// one message.
type Report map[string][]string

// Has reports whether the field has any failure messages.
func (r Report) Has(field string) bool {
	return len(r[field]) > 0
}

// Messages returns the failure messages for a field, nil if it is valid.
func (r Report) Messages(field string) []string {
	return r[field]
}

// Fields returns the reported field names in sorted order.
func (r Report) Fields() []string {
	fields := make([]string, 0, len(r))
	for field := range r {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// IsEmpty reports whether the report contains no failures.
func (r Report) IsEmpty() bool {
	return len(r) == 0
}

// Merge overlays other onto r field by field: every field present in
// other replaces that field's entry in r, other fields keep their
// existing messages. Empty entries are never stored.
func (r Report) Merge(other Report) {
	for field, messages := range other {
		if len(messages) == 0 {
			delete(r, field)
			continue
		}
		r[field] = messages
	}
}

// Clone returns a deep copy of the report.
func (r Report) Clone() Report {
	if r == nil {
		return nil
	}
	clone := make(Report, len(r))
	for field, messages := range r {
		clone[field] = append([]string(nil), messages...)
	}
	return clone
}

func (r Report) add(field, message string) {
	r[field] = append(r[field], message)
}

// asFile extracts a File from a field value, accepting both value and
// pointer forms. This is the single dispatch point between the scalar and
// file rule sets.
func asFile(v any) (File, bool) {
	switch f := v.(type) {
	case File:
		return f, true
	case *File:
		if f == nil {
			return File{}, false
		}
		return *f, true
	default:
		return File{}, false
	}
}
