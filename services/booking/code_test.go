package booking

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateBookingCode(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	code := GenerateBookingCode(now)

	if !strings.HasPrefix(code, "BK") {
		t.Fatalf("code %q missing BK prefix", code)
	}
	if len(code) != 11 {
		t.Fatalf("code %q has length %d, want 11", code, len(code))
	}
	for _, r := range code[2:] {
		if r < '0' || r > '9' {
			t.Fatalf("code %q contains non-digit %q", code, r)
		}
	}

	// The six time-derived digits are deterministic for a fixed timestamp.
	wantTimePart := code[2:8]
	for i := 0; i < 10; i++ {
		if got := GenerateBookingCode(now)[2:8]; got != wantTimePart {
			t.Fatalf("time-derived digits changed for fixed timestamp: %q vs %q", got, wantTimePart)
		}
	}
}
