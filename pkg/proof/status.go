package proof

import (
	"net/http"
	"sort"
)

// statusIdents is the fixed table of status identifiers accepted by the
// `//proof::status` annotation. The names follow net/http's StatusXxx
// constants with the Status prefix dropped, so annotations read like
// `//proof::status BadRequest`.
var statusIdents = map[string]int{
	"Continue":           http.StatusContinue,
	"SwitchingProtocols": http.StatusSwitchingProtocols,

	"OK":              http.StatusOK,
	"Created":         http.StatusCreated,
	"Accepted":        http.StatusAccepted,
	"NoContent":       http.StatusNoContent,
	"ResetContent":    http.StatusResetContent,
	"PartialContent":  http.StatusPartialContent,

	"MovedPermanently":  http.StatusMovedPermanently,
	"Found":             http.StatusFound,
	"SeeOther":          http.StatusSeeOther,
	"NotModified":       http.StatusNotModified,
	"TemporaryRedirect": http.StatusTemporaryRedirect,
	"PermanentRedirect": http.StatusPermanentRedirect,

	"BadRequest":                   http.StatusBadRequest,
	"Unauthorized":                 http.StatusUnauthorized,
	"PaymentRequired":              http.StatusPaymentRequired,
	"Forbidden":                    http.StatusForbidden,
	"NotFound":                     http.StatusNotFound,
	"MethodNotAllowed":             http.StatusMethodNotAllowed,
	"NotAcceptable":                http.StatusNotAcceptable,
	"ProxyAuthRequired":            http.StatusProxyAuthRequired,
	"RequestTimeout":               http.StatusRequestTimeout,
	"Conflict":                     http.StatusConflict,
	"Gone":                         http.StatusGone,
	"LengthRequired":               http.StatusLengthRequired,
	"PreconditionFailed":           http.StatusPreconditionFailed,
	"PayloadTooLarge":              http.StatusRequestEntityTooLarge,
	"URITooLong":                   http.StatusRequestURITooLong,
	"UnsupportedMediaType":         http.StatusUnsupportedMediaType,
	"RangeNotSatisfiable":          http.StatusRequestedRangeNotSatisfiable,
	"ExpectationFailed":            http.StatusExpectationFailed,
	"ImATeapot":                    http.StatusTeapot,
	"MisdirectedRequest":           http.StatusMisdirectedRequest,
	"UnprocessableEntity":          http.StatusUnprocessableEntity,
	"Locked":                       http.StatusLocked,
	"FailedDependency":             http.StatusFailedDependency,
	"UpgradeRequired":              http.StatusUpgradeRequired,
	"PreconditionRequired":         http.StatusPreconditionRequired,
	"TooManyRequests":              http.StatusTooManyRequests,
	"RequestHeaderFieldsTooLarge":  http.StatusRequestHeaderFieldsTooLarge,
	"UnavailableForLegalReasons":   http.StatusUnavailableForLegalReasons,

	"InternalServerError":           http.StatusInternalServerError,
	"NotImplemented":                http.StatusNotImplemented,
	"BadGateway":                    http.StatusBadGateway,
	"ServiceUnavailable":            http.StatusServiceUnavailable,
	"GatewayTimeout":                http.StatusGatewayTimeout,
	"HTTPVersionNotSupported":       http.StatusHTTPVersionNotSupported,
	"VariantAlsoNegotiates":         http.StatusVariantAlsoNegotiates,
	"InsufficientStorage":           http.StatusInsufficientStorage,
	"LoopDetected":                  http.StatusLoopDetected,
	"NotExtended":                   http.StatusNotExtended,
	"NetworkAuthenticationRequired": http.StatusNetworkAuthenticationRequired,
}

// DefaultStatusIdent is the status identifier assumed for enum variants that
// carry no `//proof::status` annotation.
const DefaultStatusIdent = "InternalServerError"

// ParseStatus resolves a status identifier from the fixed table into its
// numeric HTTP status code. The boolean reports whether the identifier is
// known.
func ParseStatus(ident string) (int, bool) {
	code, ok := statusIdents[ident]
	return code, ok
}

// StatusIdents returns the accepted status identifiers in sorted order, for
// use in diagnostics.
func StatusIdents() []string {
	idents := make([]string, 0, len(statusIdents))
	for ident := range statusIdents {
		idents = append(idents, ident)
	}
	sort.Strings(idents)
	return idents
}
