// Package render turns a parsed suite record into a self-contained HTML
// report. The style and behavior payload is a constant asset embedded
// once per document; everything sourced from the input passes through
// Escape before it reaches the markup.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/your-org/junit-html-report/pkg/models"
	"github.com/your-org/junit-html-report/pkg/names"
)

// DefaultTitle is used when no report title override is configured.
const DefaultTitle = "Test Report"

// Renderer builds HTML reports from suite records.
type Renderer struct {
	title string
	tmpl  *template.Template
}

// NewRenderer creates a renderer. An empty title selects DefaultTitle.
func NewRenderer(title string) *Renderer {
	if title == "" {
		title = DefaultTitle
	}
	return &Renderer{
		title: title,
		tmpl:  getTemplate(),
	}
}

type reportData struct {
	Title      string
	Suite      *models.SuiteRecord
	Passed     int
	SourcePath string
	Generated  string
	Assets     template.HTML
}

// Render writes the complete report document for suite to w. sourcePath,
// when non-empty, is shown in the header as the source-file label.
func (r *Renderer) Render(w io.Writer, suite *models.SuiteRecord, sourcePath string) error {
	data := reportData{
		Title:      r.title,
		Suite:      suite,
		Passed:     suite.PassedCount(),
		SourcePath: sourcePath,
		Generated:  time.Now().Format("2006-01-02 15:04:05"),
		Assets:     template.HTML(reportAssets),
	}

	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute report template: %w", err)
	}
	return nil
}

// RenderBytes renders the report into memory. The orchestrator uses this
// so the output file is only created once rendering has succeeded.
func (r *Renderer) RenderBytes(suite *models.SuiteRecord, sourcePath string) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, suite, sourcePath); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// getTemplate returns the report template with its helper functions.
func getTemplate() *template.Template {
	funcMap := template.FuncMap{
		// esc marks input-sourced text as safe after entity escaping,
		// keeping the contextual autoescaper from escaping it twice.
		"esc": func(s string) template.HTML {
			return template.HTML(Escape(s))
		},
		"cleanName": func(s string) string {
			return names.Clean(s)
		},
		"formatTime": func(seconds float64) string {
			return FormatSeconds(seconds)
		},
		"inc": func(i int) int {
			return i + 1
		},
	}

	return template.Must(template.New("report").Funcs(funcMap).Parse(reportTemplate))
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - {{esc .Suite.Name}}</title>
    {{.Assets}}
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🧪 {{.Title}}</h1>
            <div class="subtitle">
                {{esc .Suite.Name}} • Generated on {{.Generated}}
            </div>
{{- if .SourcePath}}
            <div class="source-info">
                <div class="source-label">Source File</div>
                <div class="source-path">{{esc .SourcePath}}</div>
            </div>
{{- end}}
        </div>

        <div class="stats-grid">
            <div class="stat-card">
                <div class="stat-number tests-total">{{.Suite.Tests}}</div>
                <div class="stat-label">Total Tests</div>
            </div>
            <div class="stat-card">
                <div class="stat-number tests-passed">{{.Passed}}</div>
                <div class="stat-label">Passed</div>
            </div>
            <div class="stat-card">
                <div class="stat-number tests-failed">{{.Suite.Failures}}</div>
                <div class="stat-label">Failed</div>
            </div>
            <div class="stat-card">
                <div class="stat-number tests-errors">{{.Suite.Errors}}</div>
                <div class="stat-label">Errors</div>
            </div>
            <div class="stat-card">
                <div class="stat-number tests-skipped">{{.Suite.Skipped}}</div>
                <div class="stat-label">Skipped</div>
            </div>
            <div class="stat-card">
                <div class="stat-number">{{formatTime .Suite.TimeSeconds}}</div>
                <div class="stat-label">Total Time</div>
            </div>
        </div>

        <div class="test-results">
            <div class="test-results-header">
                <div>📋 Test Cases ({{len .Suite.Cases}})</div>
                <div class="bulk-actions">
                    <button class="bulk-action-btn" id="expand-all">Expand All</button>
                    <button class="bulk-action-btn" id="collapse-all">Collapse All</button>
                </div>
            </div>
{{- range $i, $case := .Suite.Cases}}
            <div class="test-case">
                <div class="test-header">
                    <div class="test-header-left">
                        <button class="toggle-button" aria-label="Toggle test details">&#9654;</button>
                        <div class="test-name">
                            {{inc $i}}. {{esc (cleanName $case.Name)}}
                        </div>
                    </div>
                    <div class="test-status status-{{$case.Status}}">
                        {{$case.Status.Badge}}
                    </div>
                </div>

                <div class="test-details">
                    <div class="test-detail-row">
                        <div class="test-detail-label">Full Name:</div>
                        <div class="test-detail-value">{{esc $case.Name}}</div>
                    </div>
                    <div class="test-detail-row">
                        <div class="test-detail-label">Duration:</div>
                        <div class="test-detail-value">{{formatTime $case.TimeSeconds}}</div>
                    </div>
                    <div class="test-detail-row">
                        <div class="test-detail-label">Class:</div>
                        <div class="test-detail-value">{{esc $case.ClassName}}</div>
                    </div>
{{- if and (eq $case.Status.String "skipped") $case.Message}}
                    <div class="skipped-reason">
                        <strong>Skip Reason:</strong> {{esc $case.Message}}
                    </div>
{{- else if and (eq $case.Status.String "error") $case.Message}}
                    <div class="error-message">
                        <strong>Error:</strong> {{esc $case.Message}}
                    </div>
{{- else if and (eq $case.Status.String "failed") $case.Message}}
                    <div class="error-message">
                        <strong>Failure:</strong> {{esc $case.Message}}
                    </div>
{{- end}}
{{- if $case.SystemOut}}
                    <div class="system-out">
                        <strong>Output:</strong>
{{esc $case.SystemOut}}
                    </div>
{{- end}}
                </div>
            </div>
{{- end}}
        </div>

        <div class="footer">
            <p>Generated by junit-html-report • {{.Generated}}</p>
        </div>
    </div>
</body>
</html>
`
