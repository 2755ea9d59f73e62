package fetch

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessagesCarryContext(t *testing.T) {
	err := BadResponse("https://example.com/feed", 503)
	if !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "https://example.com/feed") {
		t.Errorf("message missing context: %q", err.Error())
	}

	empty := EmptyResponse("https://example.com/feed")
	if !strings.Contains(empty.Error(), "empty response") {
		t.Errorf("unexpected message: %q", empty.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := Malformed("https://example.com/data.json", errors.New("unexpected end of JSON input"))

	if !IsKind(err, KindMalformedData) {
		t.Error("expected KindMalformedData to match")
	}
	if IsKind(err, KindNetwork) {
		t.Error("did not expect KindNetwork to match")
	}

	// Wrapped errors still classify.
	wrapped := fmt.Errorf("fetching invasions: %w", err)
	if !IsKind(wrapped, KindMalformedData) {
		t.Error("expected wrapped error to match")
	}

	if IsKind(errors.New("plain"), KindNetwork) {
		t.Error("plain errors must not classify")
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NetworkError("http://example.com", cause)
	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable through Unwrap")
	}
}
