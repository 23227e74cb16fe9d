package adapters

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/proofroute/proof/pkg/proof"
)

// FiberAdapter implements proof.Router on top of a Fiber app or group.
type FiberAdapter struct {
	router fiber.Router
}

// NewFiberAdapter creates a Fiber adapter around an existing app or group.
func NewFiberAdapter(r fiber.Router) *FiberAdapter {
	return &FiberAdapter{router: r}
}

// NewDefaultFiberAdapter creates a Fiber adapter with a fresh Fiber app.
func NewDefaultFiberAdapter() *FiberAdapter {
	return &FiberAdapter{router: fiber.New()}
}

// Handle registers a generated wrapper under the given method and path.
func (fa *FiberAdapter) Handle(method, path string, handler proof.HandlerFunc) {
	fa.router.Add(proof.NormalizeMethod(method), proof.ConvertPath(path), func(c *fiber.Ctx) error {
		fc := &fiberContext{ctx: c}
		handler(fc)
		return fc.writeErr
	})
}

// fiberContext implements proof.Context for Fiber.
type fiberContext struct {
	ctx      *fiber.Ctx
	writeErr error
}

func (fc *fiberContext) Context() context.Context {
	return fc.ctx.UserContext()
}

func (fc *fiberContext) Param(name string) string {
	return fc.ctx.Params(name)
}

func (fc *fiberContext) Query(name string) string {
	return fc.ctx.Query(name)
}

func (fc *fiberContext) BindJSON(v any) error {
	return json.Unmarshal(fc.ctx.Body(), v)
}

func (fc *fiberContext) Write(res *proof.Response) error {
	for key, values := range res.Header {
		for _, value := range values {
			fc.ctx.Set(key, value)
		}
	}
	if res.ContentType != "" {
		fc.ctx.Set(fiber.HeaderContentType, res.ContentType)
	}
	fc.writeErr = fc.ctx.Status(res.StatusCode).Send(res.Body)
	return fc.writeErr
}
