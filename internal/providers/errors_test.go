package providers

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRateLimitErrorMessage(t *testing.T) {
	err := &RateLimitError{Provider: "oddsapi", StatusCode: 429, Message: "too many requests"}
	if got := err.Error(); got != "oddsapi: too many requests (status=429)" {
		t.Fatalf("unexpected message %q", got)
	}

	bare := &RateLimitError{}
	if got := bare.Error(); got != "rate limited" {
		t.Fatalf("unexpected default message %q", got)
	}
}

func TestAsRateLimitErrorUnwraps(t *testing.T) {
	inner := &RateLimitError{Provider: "espn", RetryAfter: 2 * time.Second}
	wrapped := fmt.Errorf("fetch failed: %w", inner)

	rlErr, ok := AsRateLimitError(wrapped)
	if !ok {
		t.Fatal("expected unwrap to succeed")
	}
	if rlErr.RetryAfter != 2*time.Second {
		t.Fatalf("unexpected retry-after %s", rlErr.RetryAfter)
	}

	if _, ok := AsRateLimitError(errors.New("plain")); ok {
		t.Fatal("expected plain error not to unwrap")
	}
}
