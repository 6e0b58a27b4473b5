package validators

import (
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/packline/inventory-api/pkg/errors"
)

func TestParseQueryIntDefault(t *testing.T) {
	req := httptest.NewRequest("GET", "/items", nil)

	got, err := ParseQueryInt(req, "limit", 50, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 50 {
		t.Fatalf("expected default 50, got %d", got)
	}
}

func TestParseQueryIntExplicit(t *testing.T) {
	req := httptest.NewRequest("GET", "/items?limit=10000", nil)

	got, err := ParseQueryInt(req, "limit", 50, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10000 {
		t.Fatalf("large limits are allowed, got %d", got)
	}
}

func TestParseQueryIntRejectsNonNumeric(t *testing.T) {
	req := httptest.NewRequest("GET", "/items?limit=abc", nil)

	_, err := ParseQueryInt(req, "limit", 50, 0)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseQueryIntRejectsBelowMin(t *testing.T) {
	req := httptest.NewRequest("GET", "/items?offset=-5", nil)

	_, err := ParseQueryInt(req, "offset", 0, 0)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
