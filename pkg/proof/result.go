package proof

import (
	"errors"
	"net/http"
)

// Responder is the capability generated code relies on: "convertible into a
// Response". The generator emits a ToResponse method on every annotated error
// enumeration, so enum values (and `//proof::or` override expressions)
// satisfy this interface.
type Responder interface {
	ToResponse() *Response
}

// HttpResult is the contract between a rewritten handler and the hosting
// framework: a response when the handler succeeds, a value convertible into
// the error enumeration E when it fails. The generated wrapper builds one
// from the handler's `(*Response, error)` return and resolves it exactly once
// at the function boundary.
type HttpResult[E error] struct {
	Resp *Response
	Err  error
}

// Response resolves the result into the response to send. A non-nil response
// wins; handlers returning a concrete enumeration as their second value carry
// a non-nil error interface even on success, so the response is the success
// signal. Errors are matched against the enumeration E first (errors.As
// supplies the wrapped-cause conversion path), then against the plain
// Responder capability, and finally fall back to an InternalServerError
// carrying the error's formatted string.
func (r HttpResult[E]) Response() *Response {
	if r.Resp != nil {
		return r.Resp
	}
	if r.Err == nil {
		return NewBuilder(http.StatusNoContent).Finish()
	}

	var typed E
	if errors.As(r.Err, &typed) {
		if responder, ok := any(typed).(Responder); ok {
			return responder.ToResponse()
		}
	}

	return ResponseOf(r.Err)
}

// ResponseOf converts an arbitrary error into a Response: through its
// Responder capability when it has one, otherwise as a raw
// InternalServerError. Used by generated code for errors that never pass
// through a typed enumeration.
func ResponseOf(err error) *Response {
	var responder Responder
	if errors.As(err, &responder) {
		return responder.ToResponse()
	}
	return NewBuilder(http.StatusInternalServerError).Text(err.Error())
}
