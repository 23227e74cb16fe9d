package adapters

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proofroute/proof/pkg/proof"
)

// getUserWrapper mimics a generated route wrapper: bind the path parameter,
// honor the extraction-failure branch, answer with the bound value.
func getUserWrapper(c proof.Context) {
	id, idErr := proof.ParseInt(c.Param("id"))
	if idErr != nil {
		c.Write(proof.BindFailure("id", idErr))
		return
	}
	resp := proof.NewBuilder(http.StatusOK).Header("X-Seen-ID", c.Query("tag")).Text("user " + strconv.Itoa(id))
	c.Write(proof.HttpResult[error]{Resp: resp}.Response())
}

func bodyWrapper(c proof.Context) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.Write(proof.BindFailure("payload", err))
		return
	}
	c.Write(proof.NewBuilder(http.StatusCreated).Text("hello " + payload.Name))
}

func TestGinAdapter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	adapter := NewGinAdapter(engine)
	adapter.Handle("GET", "/users/{id:int}", getUserWrapper)
	adapter.Handle("POST", "/users", bodyWrapper)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/7?tag=a", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user 7", rec.Body.String())
	assert.Equal(t, "a", rec.Header().Get("X-Seen-ID"))

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `invalid parameter "id"`)

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"ada"}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "hello ada", rec.Body.String())
}

func TestEchoAdapter(t *testing.T) {
	e := echo.New()
	adapter := NewEchoAdapter(e)
	adapter.Handle("GET", "/users/{id:int}", getUserWrapper)
	adapter.Handle("POST", "/users", bodyWrapper)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/7?tag=a", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user 7", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"ada"}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "hello ada", rec.Body.String())
}

func TestEchoPathCatchAll(t *testing.T) {
	assert.Equal(t, "/files/*", echoPath("/files/{path:*}"))
	assert.Equal(t, "/users/:id", echoPath("/users/{id:int}"))
}

func TestFiberAdapter(t *testing.T) {
	app := fiber.New()
	adapter := NewFiberAdapter(app)
	adapter.Handle("GET", "/users/{id:int}", getUserWrapper)
	adapter.Handle("POST", "/users", bodyWrapper)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/7?tag=a", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "user 7", string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/users/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"ada"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}
