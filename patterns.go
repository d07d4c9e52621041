package formval

import "regexp"

// Named patterns available to the pattern rule. Emptiness is never a
// pattern concern: empty input passes every pattern, rejecting it belongs
// to the required rule.
var patterns = map[string]*regexp.Regexp{
	"email":   regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
	"number":  regexp.MustCompile(`^[+-]?\d*\.?\d+$`),
	"double":  regexp.MustCompile(`^[+-]?\d+\.\d+$`),
	"integer": regexp.MustCompile(`^[+-]?\d+$`),
	"alpha":   regexp.MustCompile("^[^\\d\\s!-/:-@[-`{-~]+$"),
}

// RegisterPattern adds a named pattern to the registry, replacing any
// previous entry with the same name. Like rule registration, this is
// meant for program initialization, not concurrent use.
func RegisterPattern(name string, re *regexp.Regexp) {
	patterns[name] = re
}
