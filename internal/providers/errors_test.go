package providers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAsHTTPErrorUnwraps(t *testing.T) {
	inner := &HTTPError{StatusCode: 502, Status: "Bad Gateway", URL: "https://statsapi.mlb.com/api/v1/schedule"}
	wrapped := fmt.Errorf("fetch schedule: %w", inner)

	httpErr, ok := AsHTTPError(wrapped)
	if !ok {
		t.Fatal("expected HTTPError")
	}
	if httpErr.StatusCode != 502 {
		t.Fatalf("expected status 502, got %d", httpErr.StatusCode)
	}

	if _, ok := AsHTTPError(errors.New("plain")); ok {
		t.Fatal("plain error should not unwrap to HTTPError")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&HTTPError{StatusCode: 404}) {
		t.Fatal("404 should be not found")
	}
	if IsNotFound(&HTTPError{StatusCode: 500}) {
		t.Fatal("500 should not be not found")
	}
	if IsNotFound(errors.New("nope")) {
		t.Fatal("plain error should not be not found")
	}
}

func TestHTTPErrorMessage(t *testing.T) {
	err := &HTTPError{StatusCode: 404, Status: "Not Found", URL: "https://statsapi.mlb.com/api/v1/schedule"}
	if !strings.Contains(err.Error(), "404 Not Found") {
		t.Fatalf("unexpected message: %s", err.Error())
	}

	bare := &HTTPError{StatusCode: 500, URL: "u"}
	if !strings.Contains(bare.Error(), "status 500") {
		t.Fatalf("unexpected message: %s", bare.Error())
	}
}
