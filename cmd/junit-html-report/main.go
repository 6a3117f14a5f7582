package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/your-org/junit-html-report/pkg/config"
	"github.com/your-org/junit-html-report/pkg/converter"
	"github.com/your-org/junit-html-report/pkg/logger"
	"github.com/your-org/junit-html-report/pkg/server"
	"github.com/your-org/junit-html-report/pkg/storage"
)

var (
	version = "1.0.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "junit-html-report",
		Short: "Convert JUnit XML test results into standalone HTML reports",
		Long: `junit-html-report

Converts JUnit XML test result files into self-contained HTML reports
with collapsible test case details. No external assets required.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	}

	var convertCmd = &cobra.Command{
		Use:   "convert <input.xml> [output.html]",
		Short: "Convert a JUnit XML file to an HTML report",
		Long: `Convert a JUnit XML file into a self-contained HTML report.

Without an output argument the report is written next to the input file
with a "_report.html" suffix. A bare output file name is also placed
next to the input; an output path with a directory is used as given.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runConvert,
	}

	var serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve generated reports over HTTP",
		Long:  "Start a local server that lists and serves generated HTML reports.",
		RunE:  runServe,
	}

	var historyCmd = &cobra.Command{
		Use:   "history",
		Short: "Show recent conversions",
		Long:  "List recent conversions recorded in the local history database.",
		RunE:  runHistory,
	}

	convertCmd.Flags().StringP("title", "t", "", "Report title (default \"Test Report\")")
	convertCmd.Flags().Bool("history", false, "Record this conversion in the history database")
	convertCmd.Flags().StringP("config", "c", "", "Path to configuration file")

	serveCmd.Flags().IntP("port", "p", 8080, "Port to run server on")
	serveCmd.Flags().StringP("host", "H", "127.0.0.1", "Host to bind server to")
	serveCmd.Flags().StringP("dir", "d", "reports", "Directory containing reports to serve")

	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of conversions to show")

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		logger.SetLevel(level)
	}

	rootCmd.AddCommand(convertCmd, serveCmd, historyCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func loadConfig(configFile string) (*config.Config, error) {
	if configFile != "" {
		cfg := config.NewConfig()
		if err := cfg.LoadFromFile(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.LoadFromEnv(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return config.LoadConfig()
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath := ""
	if len(args) > 1 {
		outputPath = args[1]
	}

	title, _ := cmd.Flags().GetString("title")
	recordHistory, _ := cmd.Flags().GetBool("history")
	configFile, _ := cmd.Flags().GetString("config")

	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}
	if title != "" {
		cfg.ReportTitle = title
	}
	if recordHistory {
		cfg.HistoryEnabled = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var history *storage.Database
	if cfg.HistoryEnabled {
		history, err = storage.NewDatabase(cfg.HistoryDir)
		if err != nil {
			return err
		}
		defer history.Close()
	}

	conv := converter.NewConverter(cfg, history)
	_, err = conv.Convert(inputPath, outputPath)
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetInt("port")
	host, _ := cmd.Flags().GetString("host")
	reportsDir, _ := cmd.Flags().GetString("dir")

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	dir, err := server.ResolveReportsDir(reportsDir)
	if err != nil {
		return err
	}

	var history *storage.Database
	if cfg.HistoryEnabled {
		history, err = storage.NewDatabase(cfg.HistoryDir)
		if err != nil {
			return err
		}
		defer history.Close()
	}

	logger.Infof("Serving reports from: %s", dir)

	srv := server.NewServer(&server.Config{
		Host:       host,
		Port:       port,
		ReportsDir: dir,
	}, history)

	return srv.Start()
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	db, err := storage.NewDatabase(cfg.HistoryDir)
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := db.RecentConversions(limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println("No conversions recorded yet.")
		return nil
	}

	for _, rec := range records {
		fmt.Printf("%s  %-30s  tests=%d failures=%d errors=%d skipped=%d  %s\n",
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			rec.SuiteName,
			rec.Tests,
			rec.Failures,
			rec.Errors,
			rec.Skipped,
			rec.OutputPath,
		)
	}

	return nil
}
