package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// Config holds the configuration for report conversion
type Config struct {
	// Report settings
	ReportTitle  string `mapstructure:"report_title" envconfig:"JUNIT_REPORT_TITLE"`
	OutputSuffix string `mapstructure:"output_suffix" envconfig:"JUNIT_REPORT_OUTPUT_SUFFIX"`

	// History settings
	HistoryEnabled bool   `mapstructure:"history_enabled" envconfig:"JUNIT_REPORT_HISTORY_ENABLED"`
	HistoryDir     string `mapstructure:"history_dir" envconfig:"JUNIT_REPORT_HISTORY_DIR"`

	// Server settings
	ServerHost string `mapstructure:"server_host" envconfig:"JUNIT_REPORT_SERVER_HOST"`
	ServerPort int    `mapstructure:"server_port" envconfig:"JUNIT_REPORT_SERVER_PORT"`
	ReportsDir string `mapstructure:"reports_dir" envconfig:"JUNIT_REPORT_REPORTS_DIR"`

	// Logging settings
	LogLevel string `mapstructure:"log_level" envconfig:"JUNIT_REPORT_LOG_LEVEL"`
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		ReportTitle:    "Test Report",
		OutputSuffix:   "_report",
		HistoryEnabled: false,
		HistoryDir:     ".junit-html-report",
		ServerHost:     "127.0.0.1",
		ServerPort:     8080,
		ReportsDir:     "reports",
		LogLevel:       "info",
	}
}

// LoadConfig loads configuration from the first config file found,
// then applies environment overrides on top.
func LoadConfig() (*Config, error) {
	cfg := NewConfig()

	configPaths := []string{
		"junit-html-report.yml",
		"junit-html-report.yaml",
		"junit-html-report.json",
	}

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := cfg.LoadFromFile(path); err != nil {
				return nil, err
			}
			break
		}
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a file (YAML, JSON, or TOML)
func (c *Config) LoadFromFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return v.Unmarshal(c)
}

// LoadFromEnv overrides configuration from JUNIT_REPORT_* environment variables
func (c *Config) LoadFromEnv() error {
	return envconfig.Process("", c)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.OutputSuffix == "" {
		return fmt.Errorf("output suffix must not be empty")
	}
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid server port %d", c.ServerPort)
	}
	return nil
}
