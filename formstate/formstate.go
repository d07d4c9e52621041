// Package formstate tracks the display-side validation state of a form:
// the currently shown error report and a small status machine. The
// validation engine itself is stateless; this package is the host-owned
// collaborator that merges engine output, caller-injected errors, and
// resets into one place.
package formstate

import (
	"sync"

	"github.com/dmitrymomot/formval"
)

// Status describes where the form stands in its validation lifecycle.
type Status int

const (
	// Pristine means no field has changed and nothing has been submitted.
	Pristine Status = iota

	// Dirty means at least one field changed, or the last submission
	// had failures.
	Dirty

	// Validated means the last whole-form validation came back clean and
	// no field has changed since.
	Validated
)

func (s Status) String() string {
	switch s {
	case Pristine:
		return "pristine"
	case Dirty:
		return "dirty"
	case Validated:
		return "validated"
	default:
		return "unknown"
	}
}

// Tracker owns the displayed error report and its status. Safe for
// concurrent use.
type Tracker struct {
	mu     sync.RWMutex
	status Status
	errors formval.Report
}

// New returns a pristine tracker with an empty report.
func New() *Tracker {
	return &Tracker{errors: make(formval.Report)}
}

// Status returns the current lifecycle status.
func (t *Tracker) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

// Valid reports whether the last whole-form validation came back clean
// and nothing changed since.
func (t *Tracker) Valid() bool {
	return t.Status() == Validated
}

// Errors returns a copy of the displayed report.
func (t *Tracker) Errors() formval.Report {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.errors.Clone()
}

// ApplyField records the result of a single-field validation after that
// field changed: the field's previous entry is replaced (or cleared when
// the partial report has none), other fields keep their entries. Any
// field change leaves the form dirty.
func (t *Tracker) ApplyField(field string, partial formval.Report) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if messages := partial.Messages(field); len(messages) > 0 {
		t.errors[field] = append([]string(nil), messages...)
	} else {
		delete(t.errors, field)
	}
	t.status = Dirty
}

// ApplyForm records the result of a whole-form validation, replacing the
// displayed report entirely. A clean report marks the form validated.
func (t *Tracker) ApplyForm(report formval.Report) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.errors = report.Clone()
	if t.errors == nil {
		t.errors = make(formval.Report)
	}
	if t.errors.IsEmpty() {
		t.status = Validated
	} else {
		t.status = Dirty
	}
}

// Inject merges caller-supplied errors into the displayed report,
// bypassing the engine, e.g. to surface messages returned by a remote
// system. Injected failures leave the form dirty.
func (t *Tracker) Inject(report formval.Report) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.errors.Merge(report)
	if !t.errors.IsEmpty() {
		t.status = Dirty
	}
}

// Reset clears the report and returns the form to pristine.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.errors = make(formval.Report)
	t.status = Pristine
}
