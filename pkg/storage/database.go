package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/your-org/junit-html-report/pkg/logger"
	"github.com/your-org/junit-html-report/pkg/models"
)

// Database keeps a record of past conversions
type Database struct {
	db   *sql.DB
	path string
}

// ConversionRecord represents a single report conversion
type ConversionRecord struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	InputPath   string    `json:"inputPath"`
	OutputPath  string    `json:"outputPath"`
	SuiteName   string    `json:"suiteName"`
	Tests       int       `json:"tests"`
	Failures    int       `json:"failures"`
	Errors      int       `json:"errors"`
	Skipped     int       `json:"skipped"`
	TimeSeconds float64   `json:"timeSeconds"`
}

// CaseResult represents a single test case of a recorded conversion
type CaseResult struct {
	ConversionID string  `json:"conversionId"`
	CaseName     string  `json:"caseName"`
	ClassName    string  `json:"className"`
	Status       string  `json:"status"`
	TimeSeconds  float64 `json:"timeSeconds"`
	Message      string  `json:"message,omitempty"`
}

// NewDatabase creates or opens the conversion history database
func NewDatabase(historyDir string) (*Database, error) {
	if err := os.MkdirAll(historyDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	dbPath := filepath.Join(historyDir, "conversion-history.db")
	logger.Debugf("Opening database at: %s", dbPath)

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	database := &Database{
		db:   db,
		path: dbPath,
	}

	if err := database.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return database, nil
}

// migrate creates or updates the database schema
func (d *Database) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			id TEXT PRIMARY KEY,
			timestamp DATETIME NOT NULL,
			input_path TEXT NOT NULL,
			output_path TEXT NOT NULL,
			suite_name TEXT,
			tests INTEGER,
			failures INTEGER,
			errors INTEGER,
			skipped INTEGER,
			time_seconds REAL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_conversion_timestamp
		 ON conversions(timestamp DESC)`,

		`CREATE TABLE IF NOT EXISTS conversion_cases (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			conversion_id TEXT NOT NULL,
			case_name TEXT NOT NULL,
			class_name TEXT,
			status TEXT NOT NULL,
			time_seconds REAL,
			message TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (conversion_id) REFERENCES conversions(id)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_case_name
		 ON conversion_cases(case_name)`,

		`CREATE INDEX IF NOT EXISTS idx_case_conversion
		 ON conversion_cases(conversion_id)`,
	}

	for i, migration := range migrations {
		if _, err := d.db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}

	return nil
}

// SaveConversion records a conversion and all of its test cases
func (d *Database) SaveConversion(rec *ConversionRecord, suite *models.SuiteRecord) error {
	query := `
		INSERT INTO conversions (
			id, timestamp, input_path, output_path, suite_name,
			tests, failures, errors, skipped, time_seconds
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := d.db.Exec(query,
		rec.ID,
		rec.Timestamp.Format(time.RFC3339),
		rec.InputPath,
		rec.OutputPath,
		rec.SuiteName,
		rec.Tests,
		rec.Failures,
		rec.Errors,
		rec.Skipped,
		rec.TimeSeconds,
	)
	if err != nil {
		return fmt.Errorf("failed to save conversion: %w", err)
	}

	for _, c := range suite.Cases {
		if err := d.saveCase(rec.ID, c); err != nil {
			return err
		}
	}

	logger.Debugf("Saved conversion record: %s", rec.ID)
	return nil
}

func (d *Database) saveCase(conversionID string, c *models.CaseRecord) error {
	query := `
		INSERT INTO conversion_cases (
			conversion_id, case_name, class_name, status, time_seconds, message
		) VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := d.db.Exec(query,
		conversionID,
		c.Name,
		c.ClassName,
		c.Status.String(),
		c.TimeSeconds,
		c.Message,
	)
	if err != nil {
		return fmt.Errorf("failed to save case result: %w", err)
	}
	return nil
}

// RecentConversions retrieves the last N conversions, newest first
func (d *Database) RecentConversions(limit int) ([]ConversionRecord, error) {
	query := `
		SELECT
			id, timestamp, input_path, output_path, suite_name,
			tests, failures, errors, skipped, time_seconds
		FROM conversions
		ORDER BY timestamp DESC
		LIMIT ?
	`

	rows, err := d.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ConversionRecord
	for rows.Next() {
		var rec ConversionRecord
		var timestamp string

		err := rows.Scan(
			&rec.ID,
			&timestamp,
			&rec.InputPath,
			&rec.OutputPath,
			&rec.SuiteName,
			&rec.Tests,
			&rec.Failures,
			&rec.Errors,
			&rec.Skipped,
			&rec.TimeSeconds,
		)
		if err != nil {
			return nil, err
		}

		rec.Timestamp, _ = time.Parse(time.RFC3339, timestamp)
		records = append(records, rec)
	}

	return records, rows.Err()
}

// CaseHistory retrieves past results for a test case by exact name, newest first
func (d *Database) CaseHistory(caseName string, limit int) ([]CaseResult, error) {
	query := `
		SELECT
			cc.conversion_id, cc.case_name, cc.class_name,
			cc.status, cc.time_seconds, cc.message
		FROM conversion_cases cc
		JOIN conversions c ON cc.conversion_id = c.id
		WHERE cc.case_name = ?
		ORDER BY c.timestamp DESC
		LIMIT ?
	`

	rows, err := d.db.Query(query, caseName, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []CaseResult
	for rows.Next() {
		var res CaseResult
		err := rows.Scan(
			&res.ConversionID,
			&res.CaseName,
			&res.ClassName,
			&res.Status,
			&res.TimeSeconds,
			&res.Message,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, rows.Err()
}

// CleanupOldData removes records older than the retention window
func (d *Database) CleanupOldData(retentionDays int) error {
	tables := []string{"conversion_cases", "conversions"}

	for _, table := range tables {
		query := fmt.Sprintf(`
			DELETE FROM %s
			WHERE created_at < datetime('now', '-' || ? || ' days')
		`, table)

		result, err := d.db.Exec(query, retentionDays)
		if err != nil {
			logger.Warnf("Failed to cleanup %s: %v", table, err)
			continue
		}

		rows, _ := result.RowsAffected()
		logger.Debugf("Cleaned up %d old records from %s", rows, table)
	}

	return nil
}

// Close closes the database connection
func (d *Database) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}
