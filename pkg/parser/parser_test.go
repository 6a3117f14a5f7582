package parser

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/your-org/junit-html-report/pkg/models"
)

func TestParse_FullDocument(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<testsuites>
  <testsuite name="verify-run" tests="3" disabled="1" errors="0" failures="1" skipped="1" time="12.5">
    <testcase name="first test" classname="suite.alpha" time="0.25"/>
    <testcase name="second test" classname="suite.beta" time="2.5">
      <failure>Assertion X</failure>
    </testcase>
    <testcase name="third test" classname="suite.gamma" time="0.1">
      <skipped>Not applicable</skipped>
      <system-out>
        captured output
      </system-out>
    </testcase>
  </testsuite>
</testsuites>`)

	suite, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := &models.SuiteRecord{
		Name:        "verify-run",
		Tests:       3,
		Disabled:    1,
		Errors:      0,
		Failures:    1,
		Skipped:     1,
		TimeSeconds: 12.5,
		Cases: []*models.CaseRecord{
			{Name: "first test", ClassName: "suite.alpha", TimeSeconds: 0.25, Status: models.StatusPassed},
			{Name: "second test", ClassName: "suite.beta", TimeSeconds: 2.5, Status: models.StatusFailed, Message: "Assertion X"},
			{Name: "third test", ClassName: "suite.gamma", TimeSeconds: 0.1, Status: models.StatusSkipped, Message: "Not applicable", SystemOut: "captured output"},
		},
	}

	if diff := cmp.Diff(want, suite); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}

	if suite.PassedCount() != 1 {
		t.Errorf("PassedCount() = %v, want %v", suite.PassedCount(), 1)
	}
}

func TestParse_RootLevelTestsuite(t *testing.T) {
	data := []byte(`<testsuite name="bare" tests="1" time="0.5">
  <testcase name="only test" time="0.5"/>
</testsuite>`)

	suite, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if suite.Name != "bare" {
		t.Errorf("Name = %v, want %v", suite.Name, "bare")
	}
	if len(suite.Cases) != 1 {
		t.Fatalf("len(Cases) = %v, want %v", len(suite.Cases), 1)
	}
	if suite.Cases[0].Name != "only test" {
		t.Errorf("Cases[0].Name = %v, want %v", suite.Cases[0].Name, "only test")
	}
}

func TestParse_AbsentAttributesDefault(t *testing.T) {
	data := []byte(`<testsuites><testsuite><testcase/></testsuite></testsuites>`)

	suite, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := &models.SuiteRecord{
		Name: "Unknown",
		Cases: []*models.CaseRecord{
			{Name: "Unknown", Status: models.StatusPassed},
		},
	}

	if diff := cmp.Diff(want, suite); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_MarkerPrecedence(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  models.Status
		wantMessage string
	}{
		{
			name:        "skipped wins over error and failure",
			body:        `<skipped>skip reason</skipped><error>boom</error><failure>nope</failure>`,
			wantStatus:  models.StatusSkipped,
			wantMessage: "skip reason",
		},
		{
			name:        "error wins over failure",
			body:        `<error>boom</error><failure>nope</failure>`,
			wantStatus:  models.StatusError,
			wantMessage: "boom",
		},
		{
			name:        "failure alone",
			body:        `<failure>nope</failure>`,
			wantStatus:  models.StatusFailed,
			wantMessage: "nope",
		},
		{
			name:        "no marker means passed",
			body:        ``,
			wantStatus:  models.StatusPassed,
			wantMessage: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(`<testsuites><testsuite tests="1"><testcase name="t">` + tt.body + `</testcase></testsuite></testsuites>`)
			suite, err := Parse(data)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			c := suite.Cases[0]
			if c.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", c.Status, tt.wantStatus)
			}
			if c.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", c.Message, tt.wantMessage)
			}
		})
	}
}

func TestParse_EmptyMarkerFallbackMessages(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			name:        "self-closed skipped marker",
			body:        `<skipped/>`,
			wantMessage: "Skipped",
		},
		{
			name:        "empty error marker",
			body:        `<error></error>`,
			wantMessage: "Error occurred",
		},
		{
			name:        "whitespace-only failure marker",
			body:        "<failure>\n   </failure>",
			wantMessage: "Test failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(`<testsuites><testsuite><testcase name="t">` + tt.body + `</testcase></testsuite></testsuites>`)
			suite, err := Parse(data)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := suite.Cases[0].Message; got != tt.wantMessage {
				t.Errorf("Message = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestParse_ZeroCases(t *testing.T) {
	data := []byte(`<testsuites><testsuite name="empty" tests="0" time="0"/></testsuites>`)

	suite, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(suite.Cases) != 0 {
		t.Errorf("len(Cases) = %v, want %v", len(suite.Cases), 0)
	}
	if suite.PassedCount() != 0 {
		t.Errorf("PassedCount() = %v, want %v", suite.PassedCount(), 0)
	}
}

func TestParse_MalformedInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "not xml at all",
			data: `{"tests": 3}`,
		},
		{
			name: "unclosed element",
			data: `<testsuites><testsuite name="broken">`,
		},
		{
			name: "no testsuite element",
			data: `<report><summary tests="3"/></report>`,
		},
		{
			name: "non-numeric tests attribute",
			data: `<testsuites><testsuite tests="lots"/></testsuites>`,
		},
		{
			name: "non-numeric time attribute",
			data: `<testsuites><testsuite tests="1" time="fast"/></testsuites>`,
		},
		{
			name: "non-numeric attribute on root-level suite",
			data: `<testsuite tests="lots"/>`,
		},
		{
			name: "non-numeric case time",
			data: `<testsuites><testsuite tests="1"><testcase name="t" time="slow"/></testsuite></testsuites>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			if !errors.Is(err, ErrMalformedDocument) {
				t.Errorf("Parse() error = %v, want wrapped ErrMalformedDocument", err)
			}
		})
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "absent.xml"))
	if err == nil {
		t.Fatal("ParseFile() expected error, got nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ParseFile() error = %v, want wrapped fs.ErrNotExist", err)
	}
	if errors.Is(err, ErrMalformedDocument) {
		t.Errorf("ParseFile() error should not be a document error: %v", err)
	}
}

func TestParseFile_ReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xml")
	data := []byte(`<testsuites><testsuite name="disk" tests="1"><testcase name="t"/></testsuite></testsuites>`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	suite, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if suite.Name != "disk" {
		t.Errorf("Name = %v, want %v", suite.Name, "disk")
	}
}
