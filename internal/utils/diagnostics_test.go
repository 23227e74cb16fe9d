package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnosticsInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiagnosticSystem(DiagnosticInfo)
	d.SetOutput(&buf)

	d.Header("generating for example.com/shop")
	d.Item("scanned %d file(s)", 3)
	d.Debug("detail that should not appear")
	d.Error("something broke")

	out := buf.String()
	assert.Contains(t, out, "proof: generating for example.com/shop")
	assert.Contains(t, out, "scanned 3 file(s)")
	assert.NotContains(t, out, "detail that should not appear")
	assert.Contains(t, out, "something broke")
}

func TestDiagnosticsQuietLevel(t *testing.T) {
	var buf bytes.Buffer
	d := NewQuietDiagnostics()
	d.SetOutput(&buf)

	d.Header("banner")
	d.Writing("autogen_proof.go")
	d.Error("still visible")
	d.Summary("done")

	out := buf.String()
	assert.NotContains(t, out, "banner")
	assert.NotContains(t, out, "Writing")
	assert.Contains(t, out, "still visible")
	assert.Contains(t, out, "done")
}

func TestDiagnosticsDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	d := NewVerboseDiagnostics()
	d.SetOutput(&buf)

	d.Debug("per-file detail")
	assert.Contains(t, buf.String(), "per-file detail")
}
