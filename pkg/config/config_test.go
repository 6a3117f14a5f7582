package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if got, want := cfg.ReportTitle, "Test Report"; got != want {
		t.Errorf("ReportTitle = %q, want %q", got, want)
	}
	if got, want := cfg.OutputSuffix, "_report"; got != want {
		t.Errorf("OutputSuffix = %q, want %q", got, want)
	}
	if cfg.HistoryEnabled {
		t.Errorf("HistoryEnabled = true, want false")
	}
	if got, want := cfg.ServerPort, 8080; got != want {
		t.Errorf("ServerPort = %d, want %d", got, want)
	}
	if got, want := cfg.LogLevel, "info"; got != want {
		t.Errorf("LogLevel = %q, want %q", got, want)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "junit-html-report.yml")
	data := "report_title: Nightly Run\nserver_port: 9090\nhistory_enabled: true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	if err := cfg.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	if got, want := cfg.ReportTitle, "Nightly Run"; got != want {
		t.Errorf("ReportTitle = %q, want %q", got, want)
	}
	if got, want := cfg.ServerPort, 9090; got != want {
		t.Errorf("ServerPort = %d, want %d", got, want)
	}
	if !cfg.HistoryEnabled {
		t.Errorf("HistoryEnabled = false, want true")
	}
	// Keys absent from the file keep their defaults.
	if got, want := cfg.OutputSuffix, "_report"; got != want {
		t.Errorf("OutputSuffix = %q, want %q", got, want)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.LoadFromFile(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Errorf("LoadFromFile() error = nil, want error for missing file")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JUNIT_REPORT_TITLE", "CI Results")
	t.Setenv("JUNIT_REPORT_SERVER_PORT", "3000")
	t.Setenv("JUNIT_REPORT_HISTORY_ENABLED", "true")

	cfg := NewConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if got, want := cfg.ReportTitle, "CI Results"; got != want {
		t.Errorf("ReportTitle = %q, want %q", got, want)
	}
	if got, want := cfg.ServerPort, 3000; got != want {
		t.Errorf("ServerPort = %d, want %d", got, want)
	}
	if !cfg.HistoryEnabled {
		t.Errorf("HistoryEnabled = false, want true")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty suffix", func(c *Config) { c.OutputSuffix = "" }, true},
		{"port too low", func(c *Config) { c.ServerPort = 0 }, true},
		{"port too high", func(c *Config) { c.ServerPort = 70000 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
