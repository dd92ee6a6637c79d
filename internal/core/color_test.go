package core

import "testing"

func TestNearestColor(t *testing.T) {
	tests := []struct {
		hex      string
		expected Color
	}{
		{"#ff4d4d", ColorBrightRed},
		{"#4da6ff", ColorBrightBlue},
		{"#ffffff", ColorBrightWhite},
		{"#8a8a8a", ColorGray},
		{"not-a-color", ColorDefault},
		{"#12345", ColorDefault},
	}

	for _, tc := range tests {
		if got := NearestColor(tc.hex); got != tc.expected {
			t.Errorf("NearestColor(%q) = %d, expected %d", tc.hex, got, tc.expected)
		}
	}
}
