package logging

import "testing"

func TestNew(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		level, format string
	}{
		{"debug", "console"},
		{"info", "json"},
		{"warn", "console"},
	} {
		log, err := New(tc.level, tc.format)
		if err != nil {
			t.Fatalf("New(%q, %q) error: %v", tc.level, tc.format, err)
		}
		if log == nil {
			t.Fatalf("New(%q, %q) returned nil logger", tc.level, tc.format)
		}
	}
}

func TestNew_BadLevel(t *testing.T) {
	t.Parallel()

	if _, err := New("loud", "console"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
