// Package proof provides the runtime contract between code emitted by the
// proof generator and the hosting web framework: the Response type, the
// response Builder handed to transformers, the HttpResult boundary carrier,
// and the Router/Context abstraction implemented by the framework adapters.
package proof

import "net/http"

// Response represents a fully built HTTP response: a status code, optional
// headers, a content type and a raw body. Generated code produces values of
// this type and hands them to the active framework adapter for writing.
type Response struct {
	// StatusCode is the HTTP status code to send (e.g. 400, 404, 500)
	StatusCode int

	// ContentType is the value of the Content-Type header. Empty means the
	// adapter's default for raw bodies.
	ContentType string

	// Header holds any additional response headers.
	Header http.Header

	// Body is the raw response body.
	Body []byte
}

// SetHeader sets a response header, allocating the header map on first use.
func (r *Response) SetHeader(key, value string) {
	if r.Header == nil {
		r.Header = make(http.Header)
	}
	r.Header.Set(key, value)
}
