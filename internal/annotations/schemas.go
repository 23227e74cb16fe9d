package annotations

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/proofroute/proof/pkg/proof"
)

// Builtin annotation schemas. These define the fixed grammar of the proof
// annotation surface; anything outside it is rejected before code generation
// starts.

var (
	identPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	exprPattern  = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*(\.[a-zA-Z_][a-zA-Z0-9_]*)*$`)
)

// ValidateIdent checks that a value is a plain Go identifier.
func ValidateIdent(value string) error {
	if !identPattern.MatchString(value) {
		return fmt.Errorf("must be a valid Go identifier, got '%s'", value)
	}
	return nil
}

// ValidateBranchExpr checks that a value is an identifier or a selector
// expression naming an enum variant (Variant or pkg.Variant). Whether the
// expression actually resolves is left to the host compiler after expansion.
func ValidateBranchExpr(value string) error {
	if !exprPattern.MatchString(value) {
		return fmt.Errorf("must be an enum variant expression, got '%s'", value)
	}
	return nil
}

// ErrorAnnotationSchema defines //proof::error, the enum-level marker.
var ErrorAnnotationSchema = Schema{
	Kind:        ErrorAnnotation,
	Description: "Marks a named type as an error enumeration with HTTP response semantics",
	Parameters: map[string]ParameterSpec{
		"Transformer": {
			Description: "Function of shape func(*proof.Builder, string) *proof.Response that builds every variant's response",
			Validator:   ValidateIdent,
		},
	},
	Examples: []string{
		"//proof::error",
		"//proof::error -Transformer=TransformError",
	},
}

// StatusAnnotationSchema defines //proof::status, the variant-level status
// attribute.
var StatusAnnotationSchema = Schema{
	Kind:        StatusAnnotation,
	Description: "Sets the HTTP status of one enum variant (default InternalServerError)",
	Parameters: map[string]ParameterSpec{
		"status": {
			Required:    true,
			Positional:  true,
			Description: "Status identifier from the fixed table, e.g. BadRequest",
			Validator: func(value string) error {
				if _, ok := proof.ParseStatus(value); !ok {
					return fmt.Errorf("must be one of the fixed status identifiers (e.g. %s), got '%s'",
						strings.Join([]string{"BadRequest", "Unauthorized", "NotFound", "InternalServerError"}, ", "), value)
				}
				return nil
			},
		},
	},
	Examples: []string{
		"//proof::status BadRequest",
		"//proof::status Unauthorized",
	},
}

// routeMethods is the accepted HTTP method set for //proof::route.
var routeMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"}

// RouteAnnotationSchema defines //proof::route, the handler-level route
// attribute. Path syntax beyond the leading slash is passed through to the
// framework untouched.
var RouteAnnotationSchema = Schema{
	Kind:        RouteAnnotation,
	Description: "Rewrites a handler function into a registered HTTP route",
	Parameters: map[string]ParameterSpec{
		"method": {
			Required:    true,
			Positional:  true,
			Description: "HTTP method (GET, POST, PUT, DELETE, PATCH, HEAD, OPTIONS)",
			Validator: func(value string) error {
				upper := strings.ToUpper(value)
				for _, valid := range routeMethods {
					if upper == valid {
						return nil
					}
				}
				return fmt.Errorf("must be one of: %s, got '%s'", strings.Join(routeMethods, ", "), value)
			},
		},
		"path": {
			Required:    true,
			Positional:  true,
			Description: "URL path, optionally with {name} or {name:type} placeholders",
			Validator: func(value string) error {
				if !strings.HasPrefix(value, "/") {
					return fmt.Errorf("path must start with '/', got '%s'", value)
				}
				return nil
			},
		},
		"Errors": {
			Description: "Error enumeration the handler's failures convert through; inferred when omitted",
			Validator:   ValidateIdent,
		},
	},
	Examples: []string{
		"//proof::route GET /users",
		"//proof::route GET /users/{id:int}",
		"//proof::route POST /users -Errors=UserError",
	},
}

// OverrideAnnotationSchema defines //proof::or, the parameter-level
// extraction-failure override.
var OverrideAnnotationSchema = Schema{
	Kind:        OverrideAnnotation,
	Description: "Overrides the extraction-failure response of one handler parameter with an enum variant",
	Parameters: map[string]ParameterSpec{
		"param": {
			Required:    true,
			Positional:  true,
			Description: "Name of the handler parameter the override applies to",
			Validator:   ValidateIdent,
		},
		"branch": {
			Required:    true,
			Positional:  true,
			Description: "Enum variant expression to respond with when extraction fails",
			Validator:   ValidateBranchExpr,
		},
	},
	Examples: []string{
		"//proof::or body=ErrInvalidBody",
		"//proof::or id=apperr.ErrBadID",
	},
}

// RegisterBuiltinSchemas registers the four builtin schemas with a registry.
func RegisterBuiltinSchemas(r Registry) error {
	schemas := []Schema{
		ErrorAnnotationSchema,
		StatusAnnotationSchema,
		RouteAnnotationSchema,
		OverrideAnnotationSchema,
	}
	for _, schema := range schemas {
		if err := r.Register(schema.Kind, schema); err != nil {
			return err
		}
	}
	return nil
}
