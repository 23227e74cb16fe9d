package annotations

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Prefix is the annotation marker proof looks for inside comments.
const Prefix = "proof::"

// IsAnnotation reports whether a comment line is a proof annotation. Ordinary
// comments are ignored by the scanner; only lines carrying the prefix enter
// the resolver at all.
func IsAnnotation(comment string) bool {
	content := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "//"))
	return strings.HasPrefix(content, Prefix)
}

// annotationLine is the participle grammar root for one annotation comment.
type annotationLine struct {
	Kind  string     `parser:"Prefix @Ident"`
	Items []lineItem `parser:"@@*"`
}

// lineItem is one token group after the annotation kind: a -Key=Value flag, a
// bare Key=Value pair (override branches) or a positional word.
type lineItem struct {
	Flag *flagItem `parser:"Dash @@"`
	Pair *pairItem `parser:"| @@"`
	Word *string   `parser:"| (@Ident | @Path | @String | @Number)"`
}

type flagItem struct {
	Key   string  `parser:"@Ident"`
	Value *string `parser:"(Equals (@Ident | @Path | @String | @Number))?"`
}

type pairItem struct {
	Key   string `parser:"@Ident Equals"`
	Value string `parser:"(@Ident | @Path | @String | @Number)"`
}

// Parser parses and validates single annotation comments against the schema
// registry. It is pure: no side effects beyond the returned diagnostics.
type Parser struct {
	parser   *participle.Parser[annotationLine]
	registry Registry
}

// NewParser creates an annotation parser backed by the given registry.
func NewParser(registry Registry) *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Prefix", Pattern: `//\s*proof::`},
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Path", Pattern: `/[^\s]*`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.]*`},
		{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
		{Name: "Equals", Pattern: `=`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[annotationLine](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &Parser{parser: parser, registry: registry}
}

// NewDefaultParser creates an annotation parser backed by the builtin
// schemas.
func NewDefaultParser() *Parser {
	return NewParser(DefaultRegistry())
}

// Parse parses one annotation comment into a validated ParsedAnnotation, or
// fails with a diagnostic attached to loc.
func (p *Parser) Parse(comment string, loc SourceLocation) (*ParsedAnnotation, AnnotationError) {
	line, err := p.parser.ParseString(loc.File, strings.TrimSpace(comment))
	if err != nil {
		return nil, &SyntaxError{
			Msg:  err.Error(),
			Loc:  loc,
			Hint: "Annotations look like //proof::route GET /users or //proof::status BadRequest",
		}
	}

	kind, kindErr := ParseKind(line.Kind)
	if kindErr != nil {
		return nil, &UnrecognizedAttributeError{
			Attribute: line.Kind,
			Loc:       loc,
			Hint:      "Supported annotations: error, status, route, or",
		}
	}

	schema, schemaErr := p.registry.GetSchema(kind)
	if schemaErr != nil {
		return nil, &UnrecognizedAttributeError{
			Attribute: line.Kind,
			Loc:       loc,
			Hint:      "The annotation kind is not registered",
		}
	}

	parsed := &ParsedAnnotation{
		Kind:       kind,
		Parameters: make(map[string]string),
		Location:   loc,
		Raw:        strings.TrimSpace(comment),
	}

	if aerr := p.collectItems(parsed, schema, line.Items); aerr != nil {
		return nil, aerr
	}
	if aerr := p.validate(parsed, schema); aerr != nil {
		return nil, aerr
	}

	return parsed, nil
}

// collectItems distributes the parsed token groups into the annotation's
// parameter map according to the schema.
func (p *Parser) collectItems(parsed *ParsedAnnotation, schema Schema, items []lineItem) AnnotationError {
	// Override annotations have their own shape: exactly one param=Expr pair.
	if parsed.Kind == OverrideAnnotation {
		return p.collectOverride(parsed, items)
	}

	positional := positionalOrder(parsed.Kind)
	positionalIdx := 0

	for _, item := range items {
		switch {
		case item.Flag != nil:
			spec, known := schema.Parameters[item.Flag.Key]
			if !known || spec.Positional {
				return &UnrecognizedAttributeError{
					Attribute: item.Flag.Key,
					Loc:       parsed.Location,
					Hint:      fmt.Sprintf("Annotation '%s' accepts: %s", parsed.Kind, strings.Join(namedParameters(schema), ", ")),
				}
			}
			if item.Flag.Value == nil {
				return &InvalidAttributeValueError{
					Parameter: item.Flag.Key,
					Expected:  "a value (-" + item.Flag.Key + "=...)",
					Actual:    "no value",
					Loc:       parsed.Location,
					Hint:      "Provide a value for the flag",
				}
			}
			parsed.Parameters[item.Flag.Key] = unquote(*item.Flag.Value)

		case item.Pair != nil:
			return &SyntaxError{
				Msg:  fmt.Sprintf("unexpected '%s=%s'", item.Pair.Key, item.Pair.Value),
				Loc:  parsed.Location,
				Hint: "Key=Value pairs are only valid on //proof::or annotations",
			}

		case item.Word != nil:
			if positionalIdx >= len(positional) {
				return &SyntaxError{
					Msg:  fmt.Sprintf("unexpected '%s'", *item.Word),
					Loc:  parsed.Location,
					Hint: fmt.Sprintf("Annotation '%s' takes %d positional value(s)", parsed.Kind, len(positional)),
				}
			}
			parsed.Parameters[positional[positionalIdx]] = unquote(*item.Word)
			positionalIdx++
		}
	}

	return nil
}

// collectOverride handles the //proof::or param=Expr shape.
func (p *Parser) collectOverride(parsed *ParsedAnnotation, items []lineItem) AnnotationError {
	if len(items) != 1 || items[0].Pair == nil {
		return &SyntaxError{
			Msg:  "override annotations take exactly one param=Variant pair",
			Loc:  parsed.Location,
			Hint: "Example: //proof::or body=ErrInvalidBody",
		}
	}
	parsed.Parameters["param"] = items[0].Pair.Key
	parsed.Parameters["branch"] = unquote(items[0].Pair.Value)
	return nil
}

// validate runs the schema's validators and required checks.
func (p *Parser) validate(parsed *ParsedAnnotation, schema Schema) AnnotationError {
	for name, value := range parsed.Parameters {
		spec, known := schema.Parameters[name]
		if !known {
			return &UnrecognizedAttributeError{
				Attribute: name,
				Loc:       parsed.Location,
				Hint:      fmt.Sprintf("Annotation '%s' accepts: %s", parsed.Kind, strings.Join(namedParameters(schema), ", ")),
			}
		}
		if spec.Validator != nil {
			if err := spec.Validator(value); err != nil {
				return &InvalidAttributeValueError{
					Parameter: name,
					Expected:  spec.Description,
					Actual:    value,
					Loc:       parsed.Location,
					Hint:      err.Error(),
				}
			}
		}
	}

	for name, spec := range schema.Parameters {
		if spec.Required && !parsed.Has(name) {
			return &InvalidAttributeValueError{
				Parameter: name,
				Expected:  spec.Description,
				Actual:    "nothing",
				Loc:       parsed.Location,
				Hint:      fmt.Sprintf("Annotation '%s' requires '%s'", parsed.Kind, name),
			}
		}
	}

	return nil
}

// positionalOrder returns the positional parameter names of a kind in the
// order they appear on the annotation line.
func positionalOrder(kind Kind) []string {
	switch kind {
	case StatusAnnotation:
		return []string{"status"}
	case RouteAnnotation:
		return []string{"method", "path"}
	default:
		return nil
	}
}

// namedParameters lists a schema's flag-style parameter names for hints.
func namedParameters(schema Schema) []string {
	var names []string
	for name, spec := range schema.Parameters {
		if !spec.Positional {
			names = append(names, "-"+name)
		}
	}
	if len(names) == 0 {
		names = append(names, "(no flags)")
	}
	return names
}

func unquote(s string) string {
	if len(s) >= 2 && ((s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'')) {
		return s[1 : len(s)-1]
	}
	return s
}
