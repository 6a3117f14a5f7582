package render

import "testing"

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{
			name:     "zero",
			seconds:  0,
			expected: "0.0 ms",
		},
		{
			name:     "half a second",
			seconds:  0.5,
			expected: "500.0 ms",
		},
		{
			name:     "just below one second",
			seconds:  0.999,
			expected: "999.0 ms",
		},
		{
			name:     "exactly one second",
			seconds:  1.0,
			expected: "1.00 s",
		},
		{
			name:     "just below one minute",
			seconds:  59.99,
			expected: "59.99 s",
		},
		{
			name:     "exactly one minute",
			seconds:  60.0,
			expected: "1m 0.0s",
		},
		{
			name:     "minutes with remainder",
			seconds:  125.4,
			expected: "2m 5.4s",
		},
		{
			name:     "negative falls into milliseconds branch",
			seconds:  -2.5,
			expected: "-2500.0 ms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatSeconds(tt.seconds)
			if result != tt.expected {
				t.Errorf("FormatSeconds(%v) = %q, want %q", tt.seconds, result, tt.expected)
			}
		})
	}
}
