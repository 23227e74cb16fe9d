package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholders(t *testing.T) {
	phs := Placeholders("/orgs/{org}/users/{id:int}/files/{path:*}")

	assert.Equal(t, []Placeholder{
		{Name: "org"},
		{Name: "id", Type: "int"},
		{Name: "path", Type: "*"},
	}, phs)
}

func TestPlaceholdersNone(t *testing.T) {
	assert.Empty(t, Placeholders("/health"))
}

func TestConvertPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/users", "/users"},
		{"/users/{id}", "/users/:id"},
		{"/users/{id:int}", "/users/:id"},
		{"/orgs/{org}/users/{id:uuid}", "/orgs/:org/users/:id"},
		{"/files/{path:*}", "/files/*path"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ConvertPath(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeMethod(t *testing.T) {
	assert.Equal(t, "GET", NormalizeMethod("get"))
	assert.Equal(t, "DELETE", NormalizeMethod("Delete"))
}
