package proof

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntBinder(t *testing.T) {
	v, err := ParseInt("42")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = ParseInt("")
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = ParseInt("forty-two")
	assert.Error(t, err)
}

func TestParseBoolBinder(t *testing.T) {
	v, err := ParseBool("true")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = ParseBool("")
	require.NoError(t, err)
	assert.False(t, v)

	_, err = ParseBool("maybe")
	assert.Error(t, err)
}

func TestParseFloat64Binder(t *testing.T) {
	v, err := ParseFloat64("3.25")
	require.NoError(t, err)
	assert.Equal(t, 3.25, v)
}

func TestParseUUIDBinder(t *testing.T) {
	id := uuid.New()

	v, err := ParseUUID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, v)

	v, err = ParseUUID("")
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, v)

	_, err = ParseUUID("not-a-uuid")
	assert.Error(t, err)
}

func TestBindFailure(t *testing.T) {
	_, parseErr := ParseInt("forty-two")
	require.Error(t, parseErr)

	resp := BindFailure("id", parseErr)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(resp.Body), `invalid parameter "id"`)
}
