package proof

import (
	"net/http"
	"sort"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		ident string
		code  int
	}{
		{"OK", http.StatusOK},
		{"BadRequest", http.StatusBadRequest},
		{"Unauthorized", http.StatusUnauthorized},
		{"NotFound", http.StatusNotFound},
		{"Conflict", http.StatusConflict},
		{"ImATeapot", http.StatusTeapot},
		{"InternalServerError", http.StatusInternalServerError},
		{"ServiceUnavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		code, ok := ParseStatus(tt.ident)
		if !ok {
			t.Errorf("ParseStatus(%q) not found", tt.ident)
			continue
		}
		if code != tt.code {
			t.Errorf("ParseStatus(%q) = %d, want %d", tt.ident, code, tt.code)
		}
	}
}

func TestParseStatusUnknown(t *testing.T) {
	if _, ok := ParseStatus("SomethingWeird"); ok {
		t.Error("expected unknown identifier to be rejected")
	}
	if _, ok := ParseStatus("404"); ok {
		t.Error("numeric codes are not identifiers")
	}
}

func TestDefaultStatusIdent(t *testing.T) {
	code, ok := ParseStatus(DefaultStatusIdent)
	if !ok || code != http.StatusInternalServerError {
		t.Errorf("default ident must resolve to 500, got %d (%v)", code, ok)
	}
}

func TestStatusIdentsSorted(t *testing.T) {
	idents := StatusIdents()
	if len(idents) == 0 {
		t.Fatal("expected a non-empty identifier table")
	}
	if !sort.StringsAreSorted(idents) {
		t.Error("identifier table must be sorted")
	}
}
