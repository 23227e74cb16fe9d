package annotations

import "fmt"

// Kind represents the kind of a proof annotation.
type Kind int

const (
	ErrorAnnotation    Kind = iota // //proof::error on an enum type
	StatusAnnotation               // //proof::status on a variant const
	RouteAnnotation                // //proof::route on a handler func
	OverrideAnnotation             // //proof::or on a handler func
)

// String returns the annotation keyword for the kind.
func (k Kind) String() string {
	switch k {
	case ErrorAnnotation:
		return "error"
	case StatusAnnotation:
		return "status"
	case RouteAnnotation:
		return "route"
	case OverrideAnnotation:
		return "or"
	default:
		return "unknown"
	}
}

// ParseKind converts an annotation keyword to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "error":
		return ErrorAnnotation, nil
	case "status":
		return StatusAnnotation, nil
	case "route":
		return RouteAnnotation, nil
	case "or":
		return OverrideAnnotation, nil
	default:
		return 0, fmt.Errorf("unknown annotation kind: %s", s)
	}
}

// SourceLocation represents the location of an annotation in source code.
type SourceLocation struct {
	File   string // file path
	Line   int    // line number (1-based)
	Column int    // column number (1-based)
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// ParsedAnnotation represents a fully parsed and schema-validated annotation.
// Parameter values are kept as the raw strings from the source; the grammar
// has no other value types.
type ParsedAnnotation struct {
	Kind       Kind              // annotation kind
	Parameters map[string]string // named and positional parameters
	Location   SourceLocation    // source location
	Raw        string            // original annotation text
}

// Get returns a parameter value with an optional default.
func (p *ParsedAnnotation) Get(name string, defaultValue ...string) string {
	if value, exists := p.Parameters[name]; exists {
		return value
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// Has reports whether a parameter was provided.
func (p *ParsedAnnotation) Has(name string) bool {
	_, exists := p.Parameters[name]
	return exists
}

// ParameterSpec defines the specification for an annotation parameter.
type ParameterSpec struct {
	Required    bool               // whether the parameter is required
	Positional  bool               // whether the parameter is filled positionally
	Description string             // parameter description
	Validator   func(string) error // value validator, nil means any value
}

// Schema defines the accepted parameter surface of one annotation kind.
type Schema struct {
	Kind        Kind                     // annotation kind
	Description string                   // human-readable description
	Parameters  map[string]ParameterSpec // parameter specifications
	Examples    []string                 // usage examples
}
