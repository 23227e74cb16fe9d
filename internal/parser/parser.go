// Package parser scans Go source for proof annotations and builds the
// metadata records the generator consumes. It is the shared front half of
// both generators: the attribute resolver validates every annotation before
// any code emission starts, and a single failure anywhere in a package
// aborts generation for that package without partial output.
package parser

import (
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"sort"
	"strings"

	"github.com/proofroute/proof/internal/annotations"
	"github.com/proofroute/proof/internal/models"
	"github.com/proofroute/proof/pkg/proof"
)

// scalarBinders maps supported scalar parameter types to the pkg/proof
// binder used in generated wrappers.
var scalarBinders = map[string]string{
	"string":    "proof.ParseString",
	"int":       "proof.ParseInt",
	"int64":     "proof.ParseInt64",
	"float64":   "proof.ParseFloat64",
	"bool":      "proof.ParseBool",
	"uuid.UUID": "proof.ParseUUID",
}

// BinderFor returns the binder function for a scalar parameter type.
func BinderFor(goType string) (string, bool) {
	binder, ok := scalarBinders[goType]
	return binder, ok
}

// Parser extracts proof metadata from Go packages.
type Parser struct {
	fileSet     *token.FileSet
	annotations *annotations.Parser
}

// NewParser creates a parser backed by the builtin annotation schemas.
func NewParser() *Parser {
	return &Parser{
		fileSet:     token.NewFileSet(),
		annotations: annotations.NewDefaultParser(),
	}
}

// ParseSource parses a single source string. Used heavily by tests.
func (p *Parser) ParseSource(filename, source string) (*models.PackageMetadata, error) {
	file, err := goparser.ParseFile(p.fileSet, filename, source, goparser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	return p.process(file.Name.Name, "./", map[string]*ast.File{filename: file})
}

// ParseDirectory scans one directory (one package) for annotated Go files.
func (p *Parser) ParseDirectory(path string) (*models.PackageMetadata, error) {
	pkgs, err := goparser.ParseDir(p.fileSet, path, func(fi fs.FileInfo) bool {
		name := fi.Name()
		return !strings.HasSuffix(name, "_test.go") && name != "autogen_proof.go"
	}, goparser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse directory %s: %w", path, err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no Go packages found in directory %s", path)
	}
	if len(pkgs) > 1 {
		return nil, fmt.Errorf("multiple packages found in directory %s", path)
	}

	for name, pkg := range pkgs {
		return p.process(name, path, pkg.Files)
	}
	return nil, nil // unreachable
}

// process runs the three extraction passes over a package's files. Files are
// visited in sorted order so repeated runs over identical input produce
// identical metadata.
func (p *Parser) process(pkgName, pkgPath string, files map[string]*ast.File) (*models.PackageMetadata, error) {
	metadata := &models.PackageMetadata{
		PackageName: pkgName,
		PackagePath: pkgPath,
	}

	fileNames := make([]string, 0, len(files))
	for name := range files {
		fileNames = append(fileNames, name)
	}
	sort.Strings(fileNames)

	var errs []annotations.AnnotationError

	// Pass 1: enum type declarations.
	enumIndex := make(map[string]int)
	for _, fileName := range fileNames {
		p.extractEnums(files[fileName], fileName, metadata, enumIndex, &errs)
	}

	// Pass 2: variants from const blocks.
	variantErrs := make(map[string]annotations.AnnotationError)
	variantErrName := make(map[string]string)
	for _, fileName := range fileNames {
		p.extractVariants(files[fileName], fileName, metadata, enumIndex, variantErrs, variantErrName, &errs)
	}

	// A failed variant aborts its whole enum; partial conversions would not
	// be exhaustive.
	for enumName, cause := range variantErrs {
		idx := enumIndex[enumName]
		enum := metadata.Enums[idx]
		errs = append(errs, &annotations.IncompleteVariantConfigError{
			Enum:    enumName,
			Variant: variantErrName[enumName],
			Cause:   cause,
			Loc: annotations.SourceLocation{
				File: enum.FileName,
				Line: enum.Line,
			},
		})
	}

	// Pass 3: route handlers.
	for _, fileName := range fileNames {
		p.extractHandlers(files[fileName], fileName, metadata, &errs)
	}

	if len(errs) > 0 {
		return nil, &annotations.MultipleAnnotationErrors{Errors: errs}
	}
	return metadata, nil
}

// location converts a token position into an annotation source span.
func (p *Parser) location(file string, pos token.Pos) annotations.SourceLocation {
	position := p.fileSet.Position(pos)
	return annotations.SourceLocation{File: file, Line: position.Line, Column: position.Column}
}

// parseDoc parses every proof annotation inside a doc comment group.
// Non-annotation comment lines are skipped silently.
func (p *Parser) parseDoc(fileName string, doc *ast.CommentGroup, errs *[]annotations.AnnotationError) []models.Annotation {
	if doc == nil {
		return nil
	}

	var out []models.Annotation
	for _, comment := range doc.List {
		if !annotations.IsAnnotation(comment.Text) {
			continue
		}
		loc := p.location(fileName, comment.Pos())
		parsed, aerr := p.annotations.Parse(comment.Text, loc)
		if aerr != nil {
			*errs = append(*errs, aerr)
			continue
		}
		out = append(out, models.Annotation{
			ParsedAnnotation: parsed,
			FileName:         fileName,
			Line:             loc.Line,
		})
	}
	return out
}

// extractEnums finds //proof::error annotated type declarations and rejects
// annotations that are not valid on types.
func (p *Parser) extractEnums(file *ast.File, fileName string, metadata *models.PackageMetadata, enumIndex map[string]int, errs *[]annotations.AnnotationError) {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := typeSpec.Doc
			if doc == nil {
				doc = genDecl.Doc
			}

			seen := false
			for _, annotation := range p.parseDoc(fileName, doc, errs) {
				switch annotation.Kind {
				case annotations.ErrorAnnotation:
					if seen {
						*errs = append(*errs, &annotations.InvalidAttributeValueError{
							Parameter: "error",
							Expected:  "a single //proof::error annotation",
							Actual:    "a duplicate",
							Loc:       annotation.Location,
							Hint:      "The error annotation is exclusive; remove the duplicate",
						})
						continue
					}
					seen = true
					enumIndex[typeSpec.Name.Name] = len(metadata.Enums)
					metadata.Enums = append(metadata.Enums, models.EnumMetadata{
						Name:        typeSpec.Name.Name,
						Transformer: annotation.Get("Transformer"),
						FileName:    fileName,
						Line:        annotation.Line,
					})
				default:
					*errs = append(*errs, &annotations.MisplacedAttributeError{
						Attribute: "proof::" + annotation.Kind.String(),
						Placement: "a type declaration",
						Valid:     placementFor(annotation.Kind),
						Loc:       annotation.Location,
					})
				}
			}
		}
	}
}

// extractVariants walks const blocks and attaches variants to their enums.
// The const's declared (or iota-inherited) type decides enum membership.
func (p *Parser) extractVariants(file *ast.File, fileName string, metadata *models.PackageMetadata, enumIndex map[string]int, variantErrs map[string]annotations.AnnotationError, variantErrName map[string]string, errs *[]annotations.AnnotationError) {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.CONST {
			continue
		}

		currentType := ""
		for _, spec := range genDecl.Specs {
			valueSpec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			if valueSpec.Type != nil {
				currentType = types.ExprString(valueSpec.Type)
			}

			idx, isVariant := enumIndex[currentType]
			statusIdent := proof.DefaultStatusIdent
			statusSeen := false

			for _, annotation := range p.parseDoc(fileName, valueSpec.Doc, errs) {
				if !isVariant {
					*errs = append(*errs, &annotations.MisplacedAttributeError{
						Attribute: "proof::" + annotation.Kind.String(),
						Placement: "a constant outside an annotated enumeration",
						Valid:     placementFor(annotation.Kind),
						Loc:       annotation.Location,
					})
					continue
				}

				switch annotation.Kind {
				case annotations.StatusAnnotation:
					if statusSeen {
						verr := &annotations.InvalidAttributeValueError{
							Parameter: "status",
							Expected:  "a single //proof::status annotation",
							Actual:    "a duplicate",
							Loc:       annotation.Location,
							Hint:      "The status annotation is exclusive; remove the duplicate",
						}
						recordVariantError(currentType, valueSpec, verr, variantErrs, variantErrName)
						continue
					}
					statusSeen = true
					statusIdent = annotation.Get("status")
				default:
					verr := &annotations.MisplacedAttributeError{
						Attribute: "proof::" + annotation.Kind.String(),
						Placement: "an enum variant",
						Valid:     placementFor(annotation.Kind),
						Loc:       annotation.Location,
					}
					recordVariantError(currentType, valueSpec, verr, variantErrs, variantErrName)
				}
			}

			if !isVariant {
				continue
			}

			code, _ := proof.ParseStatus(statusIdent)
			for _, name := range valueSpec.Names {
				metadata.Enums[idx].Variants = append(metadata.Enums[idx].Variants, models.VariantMetadata{
					Name:        name.Name,
					StatusIdent: statusIdent,
					StatusCode:  code,
					Line:        p.fileSet.Position(name.Pos()).Line,
				})
			}
		}
	}
}

func recordVariantError(enumName string, spec *ast.ValueSpec, err annotations.AnnotationError, variantErrs map[string]annotations.AnnotationError, variantErrName map[string]string) {
	if _, exists := variantErrs[enumName]; exists {
		return
	}
	variantErrs[enumName] = err
	if len(spec.Names) > 0 {
		variantErrName[enumName] = spec.Names[0].Name
	}
}

// extractHandlers finds //proof::route annotated functions and builds their
// rewrite plan.
func (p *Parser) extractHandlers(file *ast.File, fileName string, metadata *models.PackageMetadata, errs *[]annotations.AnnotationError) {
	for _, decl := range file.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Doc == nil {
			continue
		}

		var route *models.Annotation
		overrides := make(map[string]models.Annotation)
		failed := false

		for _, annotation := range p.parseDoc(fileName, funcDecl.Doc, errs) {
			switch annotation.Kind {
			case annotations.RouteAnnotation:
				if route != nil {
					*errs = append(*errs, &annotations.InvalidAttributeValueError{
						Parameter: "route",
						Expected:  "a single //proof::route annotation",
						Actual:    "a duplicate",
						Loc:       annotation.Location,
						Hint:      "The route annotation is exclusive; remove the duplicate",
					})
					failed = true
					continue
				}
				route = &annotation
			case annotations.OverrideAnnotation:
				param := annotation.Get("param")
				if _, exists := overrides[param]; exists {
					*errs = append(*errs, &annotations.InvalidAttributeValueError{
						Parameter: "param",
						Expected:  "one override per parameter",
						Actual:    fmt.Sprintf("a second override for '%s'", param),
						Loc:       annotation.Location,
						Hint:      "Remove the duplicate //proof::or annotation",
					})
					failed = true
					continue
				}
				overrides[param] = annotation
			default:
				*errs = append(*errs, &annotations.MisplacedAttributeError{
					Attribute: "proof::" + annotation.Kind.String(),
					Placement: "a function declaration",
					Valid:     placementFor(annotation.Kind),
					Loc:       annotation.Location,
				})
				failed = true
			}
		}

		if route == nil {
			// Overrides are parameter attributes of a rewritten route; on a
			// plain function they have no meaning.
			for _, annotation := range sortedOverrides(overrides) {
				*errs = append(*errs, &annotations.MisplacedAttributeError{
					Attribute: "proof::or",
					Placement: "a function without a //proof::route annotation",
					Valid:     "a route handler's parameters",
					Loc:       annotation.Location,
				})
			}
			continue
		}
		if failed {
			continue
		}

		handler, handlerErrs := p.analyzeHandler(funcDecl, fileName, route, overrides)
		if len(handlerErrs) > 0 {
			*errs = append(*errs, handlerErrs...)
			continue
		}
		metadata.Handlers = append(metadata.Handlers, handler)
	}
}

// analyzeHandler classifies the handler's parameters, resolves overrides and
// checks the return contract.
func (p *Parser) analyzeHandler(funcDecl *ast.FuncDecl, fileName string, route *models.Annotation, overrides map[string]models.Annotation) (models.HandlerMetadata, []annotations.AnnotationError) {
	var errs []annotations.AnnotationError

	handler := models.HandlerMetadata{
		Name:     funcDecl.Name.Name,
		Method:   strings.ToUpper(route.Get("method")),
		Path:     route.Get("path"),
		FileName: fileName,
		Line:     route.Line,
	}

	placeholders := make(map[string]bool)
	for _, ph := range proof.Placeholders(handler.Path) {
		placeholders[ph.Name] = true
	}

	bodySeen := false
	if funcDecl.Type.Params != nil {
		for _, field := range funcDecl.Type.Params.List {
			typeName := types.ExprString(field.Type)
			for _, nameIdent := range field.Names {
				name := nameIdent.Name
				param := models.Parameter{Name: name, Type: typeName}

				switch {
				case typeName == "context.Context" || typeName == "proof.Context":
					param.Source = models.ParameterSourceContext
				case placeholders[name]:
					param.Source = models.ParameterSourcePath
					if _, ok := BinderFor(typeName); !ok {
						errs = append(errs, &annotations.InvalidAttributeValueError{
							Parameter: name,
							Expected:  "a bindable path parameter type (string, int, int64, float64, bool, uuid.UUID)",
							Actual:    typeName,
							Loc:       p.location(fileName, nameIdent.Pos()),
							Hint:      "Change the parameter type or remove the path placeholder",
						})
					}
				default:
					if _, ok := BinderFor(typeName); ok {
						param.Source = models.ParameterSourceQuery
					} else {
						if bodySeen {
							errs = append(errs, &annotations.InvalidAttributeValueError{
								Parameter: name,
								Expected:  "at most one body parameter",
								Actual:    "a second body parameter",
								Loc:       p.location(fileName, nameIdent.Pos()),
								Hint:      "Merge the request body into a single struct",
							})
						}
						bodySeen = true
						param.Source = models.ParameterSourceBody
					}
				}

				handler.Params = append(handler.Params, param)
			}
		}
	}

	// Attach overrides to their parameters.
	for _, annotation := range sortedOverrides(overrides) {
		target := annotation.Get("param")
		found := false
		for i := range handler.Params {
			if handler.Params[i].Name != target {
				continue
			}
			found = true
			if handler.Params[i].Source == models.ParameterSourceContext {
				errs = append(errs, &annotations.MisplacedAttributeError{
					Attribute: "proof::or",
					Placement: "a context parameter",
					Valid:     "parameters bound from the request",
					Loc:       annotation.Location,
				})
				break
			}
			handler.Params[i].Override = annotation.Get("branch")
		}
		if !found {
			errs = append(errs, &annotations.InvalidAttributeValueError{
				Parameter: "param",
				Expected:  "the name of a handler parameter",
				Actual:    target,
				Loc:       annotation.Location,
				Hint:      fmt.Sprintf("Handler '%s' has no parameter named '%s'", handler.Name, target),
			})
		}
	}

	// Return contract: (*proof.Response, error) or (*proof.Response, Enum).
	errorType, sigErr := p.checkReturns(funcDecl, fileName)
	if sigErr != nil {
		errs = append(errs, sigErr)
	}
	handler.ErrorType = errorType

	if declared := route.Get("Errors"); declared != "" {
		if handler.ErrorType != "" && handler.ErrorType != declared {
			errs = append(errs, &annotations.InvalidAttributeValueError{
				Parameter: "Errors",
				Expected:  handler.ErrorType,
				Actual:    declared,
				Loc:       route.Location,
				Hint:      "The -Errors flag must match the handler's error return type",
			})
		}
		handler.ErrorType = declared
	}

	return handler, errs
}

// checkReturns validates the handler's result list and infers the target
// error enumeration from a typed second result.
func (p *Parser) checkReturns(funcDecl *ast.FuncDecl, fileName string) (string, annotations.AnnotationError) {
	signatureHint := "Route handlers must return (*proof.Response, error) or (*proof.Response, YourError)"

	results := funcDecl.Type.Results
	if results == nil || len(results.List) != 2 {
		return "", &annotations.SyntaxError{
			Msg:  fmt.Sprintf("handler '%s' must return exactly two values", funcDecl.Name.Name),
			Loc:  p.location(fileName, funcDecl.Pos()),
			Hint: signatureHint,
		}
	}

	first := types.ExprString(results.List[0].Type)
	if first != "*proof.Response" {
		return "", &annotations.SyntaxError{
			Msg:  fmt.Sprintf("handler '%s' must return *proof.Response first, got %s", funcDecl.Name.Name, first),
			Loc:  p.location(fileName, funcDecl.Pos()),
			Hint: signatureHint,
		}
	}

	second := types.ExprString(results.List[1].Type)
	if second == "error" {
		return "", nil
	}
	return second, nil
}

// sortedOverrides returns override annotations ordered by parameter name so
// diagnostics come out deterministically.
func sortedOverrides(overrides map[string]models.Annotation) []models.Annotation {
	params := make([]string, 0, len(overrides))
	for param := range overrides {
		params = append(params, param)
	}
	sort.Strings(params)

	out := make([]models.Annotation, 0, len(params))
	for _, param := range params {
		out = append(out, overrides[param])
	}
	return out
}

// placementFor names the syntactic position an annotation kind is valid on.
func placementFor(kind annotations.Kind) string {
	switch kind {
	case annotations.ErrorAnnotation:
		return "an error enumeration type declaration"
	case annotations.StatusAnnotation:
		return "a variant constant of an annotated enumeration"
	case annotations.RouteAnnotation:
		return "a handler function declaration"
	case annotations.OverrideAnnotation:
		return "a route handler's parameters"
	default:
		return "a supported declaration"
	}
}
