package converter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/junit-html-report/pkg/config"
	"github.com/your-org/junit-html-report/pkg/logger"
	"github.com/your-org/junit-html-report/pkg/models"
	"github.com/your-org/junit-html-report/pkg/parser"
	"github.com/your-org/junit-html-report/pkg/render"
	"github.com/your-org/junit-html-report/pkg/storage"
)

// Converter turns a JUnit XML file into a standalone HTML report
type Converter struct {
	config   *config.Config
	renderer *render.Renderer
	history  *storage.Database
}

// NewConverter creates a converter for the given configuration.
// history may be nil when conversion history is disabled.
func NewConverter(cfg *config.Config, history *storage.Database) *Converter {
	return &Converter{
		config:   cfg,
		renderer: render.NewRenderer(cfg.ReportTitle),
		history:  history,
	}
}

// ResolveOutputPath decides where the HTML report goes.
// With no output given, the report lands next to the input with the
// configured suffix. A bare file name is also placed next to the input;
// anything with a directory component is used as-is.
func (c *Converter) ResolveOutputPath(inputPath, outputPath string) string {
	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		return filepath.Join(filepath.Dir(inputPath), base+c.config.OutputSuffix+".html")
	}

	if !strings.ContainsRune(outputPath, filepath.Separator) {
		return filepath.Join(filepath.Dir(inputPath), outputPath)
	}

	return outputPath
}

// Convert parses the input file, renders the report and writes it out.
// It returns the path of the written report.
func (c *Converter) Convert(inputPath, outputPath string) (string, error) {
	if _, err := os.Stat(inputPath); err != nil {
		return "", fmt.Errorf("cannot read input file: %w", err)
	}

	logger.Infof("Converting JUnit XML: %s", inputPath)

	suite, err := parser.ParseFile(inputPath)
	if err != nil {
		return "", err
	}

	logger.Infof("Parsed suite %q: %d tests, %d failures, %d errors, %d skipped",
		suite.Name, suite.Tests, suite.Failures, suite.Errors, suite.Skipped)

	data, err := c.renderer.RenderBytes(suite, inputPath)
	if err != nil {
		return "", err
	}

	resolved := c.ResolveOutputPath(inputPath, outputPath)
	if err := writeAtomic(resolved, data); err != nil {
		return "", err
	}

	if c.history != nil {
		if err := c.saveHistory(inputPath, resolved, suite); err != nil {
			logger.Warnf("Failed to record conversion history: %v", err)
		}
	}

	logger.Info("✓ Report generated successfully!")
	if abs, err := filepath.Abs(resolved); err == nil {
		logger.Infof("Open in browser: file://%s", abs)
	}

	return resolved, nil
}

// writeAtomic writes data via a temp file in the destination directory
// and renames it into place, so a failed run leaves no partial report.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".report-*.html")
	if err != nil {
		return fmt.Errorf("cannot write output file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("cannot write output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("cannot write output file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("cannot write output file: %w", err)
	}

	return nil
}

func (c *Converter) saveHistory(inputPath, outputPath string, suite *models.SuiteRecord) error {
	rec := &storage.ConversionRecord{
		ID:          uuid.New().String(),
		Timestamp:   time.Now(),
		InputPath:   inputPath,
		OutputPath:  outputPath,
		SuiteName:   suite.Name,
		Tests:       suite.Tests,
		Failures:    suite.Failures,
		Errors:      suite.Errors,
		Skipped:     suite.Skipped,
		TimeSeconds: suite.TimeSeconds,
	}
	return c.history.SaveConversion(rec, suite)
}
