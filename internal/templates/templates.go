// Package templates renders the Go source constructs the generator emits:
// enum-to-response conversions, route wrapper functions and the package
// registration function. Rendering is deterministic; identical metadata
// always yields identical source.
package templates

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/proofroute/proof/internal/models"
	"github.com/proofroute/proof/internal/parser"
)

// ProofImportPath is the runtime package every generated file imports.
const ProofImportPath = "github.com/proofroute/proof/pkg/proof"

// GeneratedFileName is the output file written into each package.
const GeneratedFileName = "autogen_proof.go"

const fileHeader = "// Code generated by proof; DO NOT EDIT.\n"

var enumTemplate = template.Must(template.New("enum").Parse(
	`// ToResponse converts a {{.Name}} into its HTTP response.
func (e {{.Name}}) ToResponse() *proof.Response {
	switch e {
{{- range .Arms}}
	case {{.Variant}}:
		return {{.Expr}}
{{- end}}
	default:
		return {{.DefaultExpr}}
	}
}
`))

type enumArm struct {
	Variant string
	Expr    string
}

type enumData struct {
	Name        string
	Arms        []enumArm
	DefaultExpr string
}

// GenerateEnumConversion renders the ToResponse method for one enum. Match
// arms keep declaration order; the trailing default arm makes the switch
// total for values outside the declared variants.
func GenerateEnumConversion(enum models.EnumMetadata) (string, error) {
	data := enumData{
		Name:        enum.Name,
		DefaultExpr: armExpr(enum.Transformer, 500),
	}
	for _, variant := range enum.Variants {
		data.Arms = append(data.Arms, enumArm{
			Variant: variant.Name,
			Expr:    armExpr(enum.Transformer, variant.StatusCode),
		})
	}

	var b strings.Builder
	if err := enumTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("failed to render enum conversion for %s: %w", enum.Name, err)
	}
	return b.String(), nil
}

// armExpr builds one match arm's response expression. With a transformer the
// arm hands it a builder pre-seeded with the variant's status plus the
// formatted string; without one it builds the raw-string response directly.
func armExpr(transformer string, status int) string {
	if transformer != "" {
		return fmt.Sprintf("%s(proof.NewBuilder(%d), e.Error())", transformer, status)
	}
	return fmt.Sprintf("proof.NewBuilder(%d).Text(e.Error())", status)
}

// WrapperName returns the generated wrapper's function name for a handler.
func WrapperName(handlerName string) string {
	return "proofRoute" + handlerName
}

// GenerateRouteWrapper renders the wrapper function for one handler: bind
// every parameter (honoring per-parameter overrides), call the handler once,
// convert the result exactly once at the boundary.
func GenerateRouteWrapper(handler models.HandlerMetadata) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "// %s adapts %s to the router contract.\n", WrapperName(handler.Name), handler.Name)
	fmt.Fprintf(&b, "func %s(c proof.Context) {\n", WrapperName(handler.Name))

	var callArgs []string
	for _, param := range handler.Params {
		switch param.Source {
		case models.ParameterSourceContext:
			if param.Type == "proof.Context" {
				callArgs = append(callArgs, "c")
			} else {
				callArgs = append(callArgs, "c.Context()")
			}
		case models.ParameterSourcePath, models.ParameterSourceQuery:
			binding, err := scalarBinding(param)
			if err != nil {
				return "", err
			}
			b.WriteString(binding)
			callArgs = append(callArgs, param.Name)
		case models.ParameterSourceBody:
			b.WriteString(bodyBinding(param))
			callArgs = append(callArgs, param.Name)
		}
	}

	fmt.Fprintf(&b, "\tresp, err := %s(%s)\n", handler.Name, strings.Join(callArgs, ", "))
	fmt.Fprintf(&b, "\tc.Write(proof.HttpResult[%s]{Resp: resp, Err: err}.Response())\n", resultType(handler))
	b.WriteString("}\n")
	return b.String(), nil
}

// resultType names the enumeration the boundary conversion goes through.
func resultType(handler models.HandlerMetadata) string {
	if handler.ErrorType == "" {
		return "error"
	}
	return handler.ErrorType
}

// scalarBinding renders the extraction of one path or query parameter.
func scalarBinding(param models.Parameter) (string, error) {
	binder, ok := parser.BinderFor(param.Type)
	if !ok {
		return "", fmt.Errorf("no binder for parameter %s of type %s", param.Name, param.Type)
	}

	source := "c.Param"
	if param.Source == models.ParameterSourceQuery {
		source = "c.Query"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\t%s, %sErr := %s(%s(%q))\n", param.Name, param.Name, binder, source, param.Name)
	fmt.Fprintf(&b, "\tif %sErr != nil {\n", param.Name)
	b.WriteString(failureBranch(param))
	b.WriteString("\t\treturn\n\t}\n")
	return b.String(), nil
}

// bodyBinding renders the JSON body extraction of one struct parameter.
func bodyBinding(param models.Parameter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\tvar %s %s\n", param.Name, param.Type)
	fmt.Fprintf(&b, "\tif %sErr := c.BindJSON(&%s); %sErr != nil {\n", param.Name, param.Name, param.Name)
	b.WriteString(failureBranch(param))
	b.WriteString("\t\treturn\n\t}\n")
	return b.String()
}

// failureBranch renders the extraction-failure response: the override
// variant's conversion when a //proof::or names one, the framework default
// otherwise.
func failureBranch(param models.Parameter) string {
	if param.Override != "" {
		return fmt.Sprintf("\t\tc.Write(%s.ToResponse())\n", param.Override)
	}
	return fmt.Sprintf("\t\tc.Write(proof.BindFailure(%q, %sErr))\n", param.Name, param.Name)
}

// GenerateRegisterFunc renders the package-level registration function. Route
// metadata is passed through to the router untouched.
func GenerateRegisterFunc(handlers []models.HandlerMetadata) string {
	var b strings.Builder
	b.WriteString("// RegisterProofRoutes registers every annotated route of this package.\n")
	b.WriteString("func RegisterProofRoutes(r proof.Router) {\n")
	for _, handler := range handlers {
		fmt.Fprintf(&b, "\tr.Handle(%q, %q, %s)\n", handler.Method, handler.Path, WrapperName(handler.Name))
	}
	b.WriteString("}\n")
	return b.String()
}

// GenerateFile assembles the full generated file for a package.
func GenerateFile(metadata *models.PackageMetadata) (string, error) {
	imports := NewImportManager()
	imports.Add(ProofImportPath)

	var parts []string
	for _, enum := range metadata.Enums {
		part, err := GenerateEnumConversion(enum)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	for _, handler := range metadata.Handlers {
		part, err := GenerateRouteWrapper(handler)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	if len(metadata.Handlers) > 0 {
		parts = append(parts, GenerateRegisterFunc(metadata.Handlers))
	}

	var b strings.Builder
	b.WriteString(fileHeader)
	b.WriteString("\n")
	fmt.Fprintf(&b, "package %s\n\n", metadata.PackageName)
	b.WriteString(imports.Render())
	b.WriteString("\n\n")
	b.WriteString(strings.Join(parts, "\n"))
	return b.String(), nil
}
