package proof

import "context"

// Context is the slice of a framework's request context that generated
// wrappers need: parameter access, JSON body binding and response writing.
// Each adapter in pkg/proof/adapters implements it for its framework.
type Context interface {
	// Context returns the request-scoped context.Context.
	Context() context.Context

	// Param returns the value of a path parameter, or "" when absent.
	Param(name string) string

	// Query returns the value of a query string parameter, or "" when absent.
	Query(name string) string

	// BindJSON decodes the request body as JSON into v.
	BindJSON(v any) error

	// Write sends the response. It must be called at most once per request.
	Write(res *Response) error
}

// HandlerFunc is the shape of a generated route wrapper.
type HandlerFunc func(c Context)

// Router registers generated wrappers with a framework. Paths use proof's
// `{name}` placeholder syntax; adapters convert it to their framework's own
// syntax. Route metadata (method, path) is passed through unmodified.
type Router interface {
	Handle(method, path string, handler HandlerFunc)
}
