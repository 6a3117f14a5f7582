package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/your-org/junit-html-report/pkg/logger"
	"github.com/your-org/junit-html-report/pkg/storage"
)

// Config holds server configuration
type Config struct {
	Host       string
	Port       int
	ReportsDir string
}

// Server serves generated reports over HTTP
type Server struct {
	config  *Config
	history *storage.Database
	router  *mux.Router
}

// ReportInfo describes one generated report on disk
type ReportInfo struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// NewServer creates a new report server.
// history may be nil when conversion history is disabled.
func NewServer(cfg *Config, history *storage.Database) *Server {
	s := &Server{
		config:  cfg,
		history: history,
		router:  mux.NewRouter(),
	}
	s.setupRoutes()
	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	logger.Infof("Server running at http://%s", addr)
	logger.Infof("Press Ctrl+C to stop")

	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the router for testing
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	// API routes must come before the catch-all file server.
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/reports", s.handleListReports).Methods("GET")
	api.HandleFunc("/conversions", s.handleListConversions).Methods("GET")

	fs := http.FileServer(http.Dir(s.config.ReportsDir))
	s.router.PathPrefix("/").Handler(fs)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(s.config.ReportsDir)
	if err != nil {
		http.Error(w, "cannot read reports directory", http.StatusInternalServerError)
		return
	}

	reports := []ReportInfo{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		reports = append(reports, ReportInfo{
			Name:     entry.Name(),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	writeJSON(w, map[string]interface{}{"reports": reports})
}

func (s *Server) handleListConversions(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		http.Error(w, "conversion history is disabled", http.StatusNotFound)
		return
	}

	records, err := s.history.RecentConversions(50)
	if err != nil {
		http.Error(w, "cannot read conversion history", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []storage.ConversionRecord{}
	}

	writeJSON(w, map[string]interface{}{"conversions": records})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Warnf("Failed to write response: %v", err)
	}
}

// ResolveReportsDir makes sure the reports directory exists
func ResolveReportsDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("reports directory not accessible: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}
