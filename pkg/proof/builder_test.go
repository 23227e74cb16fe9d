package proof

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderText(t *testing.T) {
	resp := NewBuilder(http.StatusTeapot).Text("short and stout")

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.ContentType)
	assert.Equal(t, "short and stout", string(resp.Body))
}

func TestBuilderJSON(t *testing.T) {
	resp := NewBuilder(http.StatusOK).JSON(map[string]int{"count": 3})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.ContentType)
	assert.JSONEq(t, `{"count":3}`, string(resp.Body))
}

func TestBuilderJSONEncodingFailure(t *testing.T) {
	resp := NewBuilder(http.StatusOK).JSON(make(chan int))

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, string(resp.Body), "unsupported type")
}

func TestBuilderHeaderAndContentType(t *testing.T) {
	resp := NewBuilder(http.StatusOK).
		Header("X-Request-ID", "abc").
		ContentType("application/xml").
		Body([]byte("<ok/>"))

	assert.Equal(t, "abc", resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "application/xml", resp.ContentType)
}

func TestBuilderFinish(t *testing.T) {
	resp := NewBuilder(http.StatusAccepted).Finish()

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Nil(t, resp.Body)
}

func TestBuilderStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, NewBuilder(http.StatusConflict).Status())
}

func TestBuilderAsTransformer(t *testing.T) {
	var transform Transformer = func(b *Builder, message string) *Response {
		return b.Header("X-Error", "true").JSON(map[string]string{"error": message})
	}

	resp := transform(NewBuilder(http.StatusBadRequest), "invalid name")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "true", resp.Header.Get("X-Error"))
	assert.JSONEq(t, `{"error":"invalid name"}`, string(resp.Body))
}
