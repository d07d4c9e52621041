// Package formval validates flat field data against a declarative schema
// of per-field rules, producing a report that maps field names to ordered
// failure messages.
//
// The package is a pure computation library: no I/O, no hidden state, no
// knowledge of where the data came from. The host collects field values
// into a Data record (scalars plus File metadata for uploads), validates
// the whole form on submit or a single field on change, and decides how
// to display the resulting Report.
//
// # Architecture
//
// Two layers compose the engine. Rule evaluators are stateless functions
// looked up in two registries, one for scalar values and one for File
// values, selected by the kind of the value under test. The schema layer
// compiles rule declarations once, iterates a field's rules in
// declaration order, and collects failure messages into the Report.
// Unknown rule names, unknown pattern names, and malformed parameters are
// schema bugs and fail compilation with *SchemaError; they are never
// folded into a validation result.
//
// # Usage
//
//	schema, err := formval.New(
//		formval.F("login",
//			formval.Required("Login is required"),
//			formval.Min(4, "Login is too short"),
//		),
//		formval.F("password",
//			formval.Required("Password is required"),
//			formval.EqualField("password_confirm", "Passwords must match"),
//		),
//		formval.F("avatar",
//			formval.Ext("png", "Avatar must be a png"),
//		),
//	)
//	if err != nil {
//		// schema authoring bug
//	}
//
//	report, err := schema.ValidateForm(formval.Data{
//		"login":            "ab",
//		"password":         "secret",
//		"password_confirm": "secret",
//		"avatar":           formval.File{Name: "a.png", Size: 1024, Type: "image/png"},
//	})
//	if report.Has("login") {
//		// ["Login is too short"]
//	}
//
// Schemas can also be compiled from YAML or JSON documents with
// ParseYAML; declaration order in the document is preserved.
//
// # Rule semantics
//
// Fields without a required rule are vacuously valid while their scalar
// value is empty: remaining rules only run once a value is present.
// Custom Validator rules derive their failure message from the function's
// own return value; every other rule reports its declared message.
//
// # Concurrency
//
// A compiled Schema is immutable and safe for concurrent use. Each
// validation call is a bounded synchronous computation over its own
// arguments.
package formval
