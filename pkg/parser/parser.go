// Package parser reads JUnit-style XML reports into suite records.
package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/your-org/junit-html-report/pkg/models"
)

// ErrMalformedDocument is wrapped by every failure caused by the report
// content itself: XML that does not parse, a missing testsuite element,
// or a numeric attribute holding a non-numeric value. Absent attributes
// default instead; only present-but-invalid values fail.
var ErrMalformedDocument = errors.New("malformed test report")

// Fallback messages used when a status marker carries no text.
const (
	defaultSkipMessage    = "Skipped"
	defaultErrorMessage   = "Error occurred"
	defaultFailureMessage = "Test failed"
)

const unknownName = "Unknown"

type documentXML struct {
	XMLName xml.Name
	Suites  []suiteXML `xml:"testsuite"`
}

type suiteXML struct {
	XMLName  xml.Name  `xml:"testsuite"`
	Name     string    `xml:"name,attr"`
	Tests    int       `xml:"tests,attr"`
	Disabled int       `xml:"disabled,attr"`
	Errors   int       `xml:"errors,attr"`
	Failures int       `xml:"failures,attr"`
	Skipped  int       `xml:"skipped,attr"`
	Time     float64   `xml:"time,attr"`
	Cases    []caseXML `xml:"testcase"`
}

type caseXML struct {
	Name      string     `xml:"name,attr"`
	ClassName string     `xml:"classname,attr"`
	Time      float64    `xml:"time,attr"`
	Skipped   *markerXML `xml:"skipped"`
	Error     *markerXML `xml:"error"`
	Failure   *markerXML `xml:"failure"`
	SystemOut string     `xml:"system-out"`
}

type markerXML struct {
	Text string `xml:",chardata"`
}

// ParseFile reads and parses the report at path. A missing or unreadable
// file surfaces as the wrapped *fs.PathError before any parsing happens.
func ParseFile(path string) (*models.SuiteRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}
	return Parse(data)
}

// Parse extracts a SuiteRecord from raw JUnit XML. The testsuite element
// may be the document root or a direct child of a wrapper root such as
// testsuites.
func Parse(data []byte) (*models.SuiteRecord, error) {
	var doc documentXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	var suite *suiteXML
	switch {
	case len(doc.Suites) > 0:
		suite = &doc.Suites[0]
	case doc.XMLName.Local == "testsuite":
		suite = &suiteXML{}
		if err := xml.Unmarshal(data, suite); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	default:
		return nil, fmt.Errorf("%w: no testsuite element found", ErrMalformedDocument)
	}

	record := &models.SuiteRecord{
		Name:        suite.Name,
		Tests:       suite.Tests,
		Disabled:    suite.Disabled,
		Errors:      suite.Errors,
		Failures:    suite.Failures,
		Skipped:     suite.Skipped,
		TimeSeconds: suite.Time,
		Cases:       make([]*models.CaseRecord, 0, len(suite.Cases)),
	}
	if record.Name == "" {
		record.Name = unknownName
	}

	for _, c := range suite.Cases {
		record.Cases = append(record.Cases, parseCase(c))
	}

	return record, nil
}

func parseCase(c caseXML) *models.CaseRecord {
	record := &models.CaseRecord{
		Name:        c.Name,
		ClassName:   c.ClassName,
		TimeSeconds: c.Time,
		Status:      models.StatusPassed,
		SystemOut:   strings.TrimSpace(c.SystemOut),
	}
	if record.Name == "" {
		record.Name = unknownName
	}

	// Marker precedence: skipped wins over error, error over failure.
	switch {
	case c.Skipped != nil:
		record.Status = models.StatusSkipped
		record.Message = markerText(c.Skipped, defaultSkipMessage)
	case c.Error != nil:
		record.Status = models.StatusError
		record.Message = markerText(c.Error, defaultErrorMessage)
	case c.Failure != nil:
		record.Status = models.StatusFailed
		record.Message = markerText(c.Failure, defaultFailureMessage)
	}

	return record
}

func markerText(m *markerXML, fallback string) string {
	if strings.TrimSpace(m.Text) == "" {
		return fallback
	}
	return m.Text
}
