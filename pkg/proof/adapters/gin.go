// Package adapters bridges the proof.Router and proof.Context contracts onto
// the supported web frameworks. Generated code never imports a framework
// directly; applications pick an adapter at registration time.
package adapters

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/proofroute/proof/pkg/proof"
)

// GinAdapter implements proof.Router on top of a Gin engine or route group.
type GinAdapter struct {
	router gin.IRouter
}

// NewGinAdapter creates a Gin adapter around an existing engine or group.
func NewGinAdapter(r gin.IRouter) *GinAdapter {
	return &GinAdapter{router: r}
}

// NewDefaultGinAdapter creates a Gin adapter with a default Gin engine.
func NewDefaultGinAdapter() *GinAdapter {
	return &GinAdapter{router: gin.Default()}
}

// Engine returns the underlying router for direct framework access.
func (ga *GinAdapter) Engine() gin.IRouter {
	return ga.router
}

// Handle registers a generated wrapper under the given method and path.
func (ga *GinAdapter) Handle(method, path string, handler proof.HandlerFunc) {
	ga.router.Handle(proof.NormalizeMethod(method), proof.ConvertPath(path), func(c *gin.Context) {
		handler(&ginContext{ctx: c})
	})
}

// ginContext implements proof.Context for Gin.
type ginContext struct {
	ctx *gin.Context
}

func (gc *ginContext) Context() context.Context {
	return gc.ctx.Request.Context()
}

func (gc *ginContext) Param(name string) string {
	return gc.ctx.Param(name)
}

func (gc *ginContext) Query(name string) string {
	return gc.ctx.Query(name)
}

func (gc *ginContext) BindJSON(v any) error {
	return gc.ctx.ShouldBindJSON(v)
}

func (gc *ginContext) Write(res *proof.Response) error {
	for key, values := range res.Header {
		for _, value := range values {
			gc.ctx.Header(key, value)
		}
	}
	gc.ctx.Data(res.StatusCode, res.ContentType, res.Body)
	return nil
}
