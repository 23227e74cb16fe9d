// Package models holds the metadata records built by the source scanner and
// consumed by the code generator. Every record is constructed once per run,
// never mutated afterwards, and discarded after emission.
package models

import "github.com/proofroute/proof/internal/annotations"

// Annotation pairs a parsed annotation with the file it came from.
type Annotation struct {
	*annotations.ParsedAnnotation
	FileName string // file containing the annotation
	Line     int    // line number of the annotation
}

// VariantMetadata represents one arm of an error enumeration.
type VariantMetadata struct {
	Name        string // constant identifier
	StatusIdent string // resolved status identifier (never empty)
	StatusCode  int    // numeric status code for StatusIdent
	Line        int    // declaration line
}

// EnumMetadata represents an annotated error enumeration. Variants keep their
// declaration order; the generated switch must match it.
type EnumMetadata struct {
	Name        string            // enum type name
	Transformer string            // transformer function name, "" for default bodies
	Variants    []VariantMetadata // variants in declaration order
	FileName    string            // file declaring the type
	Line        int               // declaration line
}

// ParameterSource describes where a handler parameter's value comes from.
type ParameterSource int

const (
	ParameterSourceContext ParameterSource = iota // passed through, never bound
	ParameterSourcePath                           // bound from a path placeholder
	ParameterSourceQuery                          // bound from the query string
	ParameterSourceBody                           // bound from the JSON body
)

// String returns a short name for the source.
func (s ParameterSource) String() string {
	switch s {
	case ParameterSourceContext:
		return "context"
	case ParameterSourcePath:
		return "path"
	case ParameterSourceQuery:
		return "query"
	case ParameterSourceBody:
		return "body"
	default:
		return "unknown"
	}
}

// Parameter represents one handler parameter and its binding plan.
type Parameter struct {
	Name     string          // parameter name
	Type     string          // Go type as written in the signature
	Source   ParameterSource // binding source
	Override string          // enum variant expression for extraction failures, "" = default behavior
}

// HandlerMetadata represents a rewritten route handler.
type HandlerMetadata struct {
	Name      string      // handler function name
	Method    string      // HTTP method, upper case
	Path      string      // route path as written, passed through unmodified
	Params    []Parameter // parameters in signature order
	ErrorType string      // target error enumeration, "" when the handler returns plain error
	FileName  string      // file declaring the handler
	Line      int         // declaration line
}

// PackageMetadata aggregates everything found in one package.
type PackageMetadata struct {
	PackageName string            // Go package name
	PackagePath string            // directory of the package
	Enums       []EnumMetadata    // enums in scan order (sorted by file, then line)
	Handlers    []HandlerMetadata // handlers in scan order
}

// HasAnnotations reports whether the package produced anything to generate.
func (p *PackageMetadata) HasAnnotations() bool {
	return len(p.Enums) > 0 || len(p.Handlers) > 0
}

// GeneratedFile is one emitted source file.
type GeneratedFile struct {
	FilePath string // absolute or package-relative output path
	Content  []byte // formatted Go source
}
