package models

// Status is the outcome of a single test case.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusError
	StatusSkipped
)

// String returns the lowercase status name used in markup class names.
func (s Status) String() string {
	switch s {
	case StatusFailed:
		return "failed"
	case StatusError:
		return "error"
	case StatusSkipped:
		return "skipped"
	default:
		return "passed"
	}
}

// Badge returns the uppercase label shown on the status badge.
func (s Status) Badge() string {
	switch s {
	case StatusFailed:
		return "FAILED"
	case StatusError:
		return "ERROR"
	case StatusSkipped:
		return "SKIPPED"
	default:
		return "PASSED"
	}
}

// SuiteRecord is the parsed form of one JUnit testsuite element.
type SuiteRecord struct {
	Name        string
	Tests       int
	Disabled    int
	Errors      int
	Failures    int
	Skipped     int
	TimeSeconds float64
	Cases       []*CaseRecord
}

// CaseRecord is the parsed form of one testcase element.
type CaseRecord struct {
	Name        string
	ClassName   string
	TimeSeconds float64
	Status      Status
	Message     string
	SystemOut   string
}

// PassedCount derives the passed-test counter from the suite attributes.
// It is not clamped; inconsistent input may yield a negative value.
func (s *SuiteRecord) PassedCount() int {
	return s.Tests - s.Errors - s.Failures - s.Skipped
}

// CaseCount returns the number of parsed case records. This is sourced
// from the document body and may disagree with the Tests attribute.
func (s *SuiteRecord) CaseCount() int {
	return len(s.Cases)
}
