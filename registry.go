package formval

// ScalarCompiler turns the parameters declared for a scalar rule into an
// evaluator. It runs once, when the schema is compiled, so malformed
// parameters surface as schema errors instead of evaluation-time surprises.
type ScalarCompiler func(params []any) (func(value any, data Data) bool, error)

// FileCompiler is the file-rule counterpart of ScalarCompiler.
type FileCompiler func(params []any) (func(file File, data Data) bool, error)

var (
	scalarRules = map[string]ScalarCompiler{}
	fileRules   = map[string]FileCompiler{}
)

// RegisterScalarRule registers a compiler for a scalar rule name,
// replacing any previous registration. Registered rules become available
// to every schema compiled afterwards; a name missing from both
// registries fails schema compilation with ErrUnknownRule.
//
// Not safe for concurrent use with schema compilation; register rules
// during program initialization.
func RegisterScalarRule(name string, compile ScalarCompiler) {
	scalarRules[name] = compile
}

// RegisterFileRule registers a compiler for a file rule name, replacing
// any previous registration.
func RegisterFileRule(name string, compile FileCompiler) {
	fileRules[name] = compile
}
