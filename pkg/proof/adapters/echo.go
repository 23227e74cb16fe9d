package adapters

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/proofroute/proof/pkg/proof"
)

// EchoRegistrar is the part of echo.Echo and echo.Group the adapter needs.
type EchoRegistrar interface {
	Add(method, path string, handler echo.HandlerFunc, middleware ...echo.MiddlewareFunc) *echo.Route
}

// EchoAdapter implements proof.Router on top of an Echo instance or group.
type EchoAdapter struct {
	router EchoRegistrar
}

// NewEchoAdapter creates an Echo adapter around an existing instance or group.
func NewEchoAdapter(r EchoRegistrar) *EchoAdapter {
	return &EchoAdapter{router: r}
}

// NewDefaultEchoAdapter creates an Echo adapter with a fresh Echo instance.
func NewDefaultEchoAdapter() *EchoAdapter {
	return &EchoAdapter{router: echo.New()}
}

// Handle registers a generated wrapper under the given method and path.
func (ea *EchoAdapter) Handle(method, path string, handler proof.HandlerFunc) {
	ea.router.Add(proof.NormalizeMethod(method), echoPath(path), func(c echo.Context) error {
		ec := &echoContext{ctx: c}
		handler(ec)
		return ec.writeErr
	})
}

// echoPath converts a proof path to Echo syntax. Echo's catch-all segment is
// a bare "*" rather than a named wildcard.
func echoPath(path string) string {
	converted := proof.ConvertPath(path)
	if idx := strings.Index(converted, "*"); idx >= 0 {
		converted = converted[:idx+1]
	}
	return converted
}

// echoContext implements proof.Context for Echo.
type echoContext struct {
	ctx      echo.Context
	writeErr error
}

func (ec *echoContext) Context() context.Context {
	return ec.ctx.Request().Context()
}

func (ec *echoContext) Param(name string) string {
	return ec.ctx.Param(name)
}

func (ec *echoContext) Query(name string) string {
	return ec.ctx.QueryParam(name)
}

func (ec *echoContext) BindJSON(v any) error {
	return json.NewDecoder(ec.ctx.Request().Body).Decode(v)
}

func (ec *echoContext) Write(res *proof.Response) error {
	header := ec.ctx.Response().Header()
	for key, values := range res.Header {
		for _, value := range values {
			header.Add(key, value)
		}
	}
	ec.writeErr = ec.ctx.Blob(res.StatusCode, res.ContentType, res.Body)
	return ec.writeErr
}
