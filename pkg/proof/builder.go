package proof

import (
	"encoding/json"
	"net/http"
)

// Builder constructs a Response around a pre-seeded status code. Generated
// conversion methods create one per match arm; enum-level transformers
// receive it together with the formatted error string and finish it however
// they like.
//
// A Builder is single-use: the Text, JSON, Body and Finish methods all
// produce the final Response.
type Builder struct {
	status int
	header http.Header
	ct     string
}

// NewBuilder creates a response builder seeded with the given status code.
func NewBuilder(status int) *Builder {
	return &Builder{status: status}
}

// Status returns the status code the builder was seeded with.
func (b *Builder) Status() int {
	return b.status
}

// Header adds a response header and returns the builder for chaining.
func (b *Builder) Header(key, value string) *Builder {
	if b.header == nil {
		b.header = make(http.Header)
	}
	b.header.Set(key, value)
	return b
}

// ContentType overrides the content type of the response.
func (b *Builder) ContentType(ct string) *Builder {
	b.ct = ct
	return b
}

// Text finishes the response with a plain text body.
func (b *Builder) Text(body string) *Response {
	if b.ct == "" {
		b.ct = "text/plain; charset=utf-8"
	}
	return b.Body([]byte(body))
}

// JSON finishes the response with a JSON-encoded body. Encoding failures are
// the caller's bug and surface as a 500 with the encoder's message, mirroring
// the "transformers are trusted not to fail" contract.
func (b *Builder) JSON(v any) *Response {
	data, err := json.Marshal(v)
	if err != nil {
		return &Response{
			StatusCode:  http.StatusInternalServerError,
			ContentType: "text/plain; charset=utf-8",
			Body:        []byte(err.Error()),
		}
	}
	b.ct = "application/json; charset=utf-8"
	return b.Body(data)
}

// Body finishes the response with a raw body.
func (b *Builder) Body(body []byte) *Response {
	return &Response{
		StatusCode:  b.status,
		ContentType: b.ct,
		Header:      b.header,
		Body:        body,
	}
}

// Finish finishes the response with an empty body.
func (b *Builder) Finish() *Response {
	return b.Body(nil)
}

// Transformer is the signature of an enum-level transformer function named by
// a `//proof::error -Transformer=Name` annotation. It receives a builder
// pre-seeded with the variant's status code and the error's formatted string,
// and returns the response to send unmodified. Transformers must not fail;
// there is no recovery path around them.
type Transformer func(b *Builder, message string) *Response
