package models

import "testing"

func TestStatus_String(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		expected string
	}{
		{
			name:     "passed status",
			status:   StatusPassed,
			expected: "passed",
		},
		{
			name:     "failed status",
			status:   StatusFailed,
			expected: "failed",
		},
		{
			name:     "error status",
			status:   StatusError,
			expected: "error",
		},
		{
			name:     "skipped status",
			status:   StatusSkipped,
			expected: "skipped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.status.String()
			if result != tt.expected {
				t.Errorf("String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestStatus_Badge(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		expected string
	}{
		{
			name:     "passed badge",
			status:   StatusPassed,
			expected: "PASSED",
		},
		{
			name:     "failed badge",
			status:   StatusFailed,
			expected: "FAILED",
		},
		{
			name:     "error badge",
			status:   StatusError,
			expected: "ERROR",
		},
		{
			name:     "skipped badge",
			status:   StatusSkipped,
			expected: "SKIPPED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.status.Badge()
			if result != tt.expected {
				t.Errorf("Badge() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestSuiteRecord_PassedCount(t *testing.T) {
	tests := []struct {
		name     string
		suite    SuiteRecord
		expected int
	}{
		{
			name:     "well-formed counters",
			suite:    SuiteRecord{Tests: 10, Errors: 1, Failures: 2, Skipped: 3},
			expected: 4,
		},
		{
			name:     "all passed",
			suite:    SuiteRecord{Tests: 5},
			expected: 5,
		},
		{
			name:     "empty suite",
			suite:    SuiteRecord{},
			expected: 0,
		},
		{
			name:     "inconsistent counters stay negative",
			suite:    SuiteRecord{Tests: 1, Errors: 1, Failures: 1, Skipped: 1},
			expected: -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.suite.PassedCount()
			if result != tt.expected {
				t.Errorf("PassedCount() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestSuiteRecord_CaseCount(t *testing.T) {
	suite := SuiteRecord{
		Tests: 7,
		Cases: []*CaseRecord{
			{Name: "one"},
			{Name: "two"},
		},
	}

	if suite.CaseCount() != 2 {
		t.Errorf("CaseCount() = %v, want %v", suite.CaseCount(), 2)
	}

	// The attribute and the actual list are independently sourced.
	if suite.CaseCount() == suite.Tests {
		t.Errorf("CaseCount() should not be coupled to the Tests attribute")
	}
}
