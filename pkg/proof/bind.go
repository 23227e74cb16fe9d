package proof

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

// Builtin binders used by generated wrappers to convert raw path and query
// values into handler parameter types. Empty input yields the zero value
// without error, so optional query parameters bind cleanly; anything else
// must parse or the wrapper takes its extraction-failure branch.

// ParseString binds a raw value as-is.
func ParseString(raw string) (string, error) {
	return raw, nil
}

// ParseInt binds a raw value as int.
func ParseInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// ParseInt64 binds a raw value as int64.
func ParseInt64(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

// ParseFloat64 binds a raw value as float64.
func ParseFloat64(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// ParseBool binds a raw value as bool.
func ParseBool(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// ParseUUID binds a raw value as uuid.UUID.
func ParseUUID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}

// BindFailure builds the default extraction-failure response: a 400 carrying
// the binder's error text. Parameters annotated with `//proof::or` never
// reach this; their wrapper responds with the override variant instead.
func BindFailure(param string, err error) *Response {
	return NewBuilder(http.StatusBadRequest).
		Text(fmt.Sprintf("invalid parameter %q: %v", param, err))
}
