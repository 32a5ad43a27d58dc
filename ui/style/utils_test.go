package style

import (
	"image/color"
	"testing"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected string
	}{
		{"zero", 0, "0:00"},
		{"negative clamps", -5, "0:00"},
		{"under ten seconds", 7, "0:07"},
		{"full round", 45, "0:45"},
		{"exactly a minute", 60, "1:00"},
		{"over a minute", 95, "1:35"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatClock(tc.seconds)
			if got != tc.expected {
				t.Errorf("FormatClock(%d) = %q, want %q", tc.seconds, got, tc.expected)
			}
		})
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		name     string
		h, s, v  float64
		expected color.NRGBA
	}{
		{"red", 0, 1, 1, color.NRGBA{255, 0, 0, 255}},
		{"green", 120, 1, 1, color.NRGBA{0, 255, 0, 255}},
		{"blue", 240, 1, 1, color.NRGBA{0, 0, 255, 255}},
		{"hue wraps", 480, 1, 1, color.NRGBA{0, 255, 0, 255}},
		{"negative hue wraps", -120, 1, 1, color.NRGBA{0, 0, 255, 255}},
		{"white", 0, 0, 1, color.NRGBA{255, 255, 255, 255}},
		{"black", 0, 0, 0, color.NRGBA{0, 0, 0, 255}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := HSV(tc.h, tc.s, tc.v)
			if got != tc.expected {
				t.Errorf("HSV(%v, %v, %v) = %v, want %v", tc.h, tc.s, tc.v, got, tc.expected)
			}
		})
	}
}

func TestTruncateEnd(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		maxLen      int
		expected    string
		shouldTrunc bool
	}{
		{"shorter than max", "Bluey", 10, "Bluey", false},
		{"exact length", "Bluey", 5, "Bluey", false},
		{"truncated with ellipsis", "Mickey Mouse Clubhouse", 12, "Mickey Mo...", true},
		{"maxLen 3", "abcdef", 3, "abc", true},
		{"empty string", "", 5, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, truncated := TruncateEnd(tc.input, tc.maxLen)
			if got != tc.expected {
				t.Errorf("TruncateEnd(%q, %d) = %q, want %q", tc.input, tc.maxLen, got, tc.expected)
			}
			if truncated != tc.shouldTrunc {
				t.Errorf("TruncateEnd(%q, %d) truncated = %v, want %v", tc.input, tc.maxLen, truncated, tc.shouldTrunc)
			}
		})
	}
}
