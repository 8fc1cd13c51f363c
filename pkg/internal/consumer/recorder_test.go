package consumer

import (
	"testing"
	"time"
)

func TestStoredAtFromName(t *testing.T) {
	fallback := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	got := storedAtFromName("1700000000123-photo.png", fallback)
	if want := time.UnixMilli(1700000000123).UTC(); !got.Equal(want) {
		t.Fatalf("storedAtFromName = %v, want %v", got, want)
	}

	if got := storedAtFromName("no-millis-prefix.png", fallback); !got.Equal(fallback) {
		t.Fatalf("non-numeric prefix should fall back, got %v", got)
	}

	if got := storedAtFromName("plain", fallback); !got.Equal(fallback) {
		t.Fatalf("name without separator should fall back, got %v", got)
	}
}
