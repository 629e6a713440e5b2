// Package api pkg/api/server.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/mfreeman451/portscan/pkg/models"
	"github.com/mfreeman451/portscan/pkg/scan"
	"github.com/mfreeman451/portscan/pkg/store"
)

// ScannerFactory builds a fresh scanner for one scan, wired to the
// given progress observer. A Coordinator is single-use, so the server
// asks for a new one per request.
type ScannerFactory func(progress scan.ProgressFunc) scan.Scanner

// APIServer exposes scan reports, live progress, and scan control over
// HTTP.
type APIServer struct {
	mu         sync.RWMutex
	store      store.Store
	newScanner ScannerFactory
	defaults   models.ScanRequest
	router     *mux.Router
	hub        *eventHub
	scanner    scan.Scanner
	status     ScanStatus
}

func NewAPIServer(st store.Store, factory ScannerFactory, defaults models.ScanRequest) *APIServer {
	s := &APIServer{
		store:      st,
		newScanner: factory,
		defaults:   defaults,
		router:     mux.NewRouter(),
		hub:        newEventHub(),
	}
	s.setupRoutes()

	return s
}

func (s *APIServer) setupRoutes() {
	s.router.Use(corsMiddleware)

	s.router.HandleFunc("/api/status", s.getStatus).Methods("GET")
	s.router.HandleFunc("/api/report", s.getReport).Methods("GET")
	s.router.HandleFunc("/api/reports", s.getReports).Methods("GET")
	s.router.HandleFunc("/api/results", s.getResults).Methods("GET")
	s.router.HandleFunc("/api/scan", s.startScan).Methods("POST")
	s.router.HandleFunc("/api/scan/stop", s.stopScan).Methods("POST")
	s.router.HandleFunc("/api/events", s.streamEvents).Methods("GET")
}

// Router exposes the handler for embedding in an http.Server.
func (s *APIServer) Router() http.Handler {
	return s.router
}

func (s *APIServer) Start(addr string) error {
	log.Printf("API server listening on %s", addr)

	return http.ListenAndServe(addr, s.router)
}

func (s *APIServer) getStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	status := s.status
	s.mu.RUnlock()

	writeJSON(w, status)
}

func (s *APIServer) getReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.store.LatestReport(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrNoReports) {
			http.Error(w, "No scan reports yet", http.StatusNotFound)
			return
		}

		log.Printf("Error loading latest report: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, report)
}

func (s *APIServer) getReports(w http.ResponseWriter, r *http.Request) {
	reports, err := s.store.GetReports(r.Context())
	if err != nil {
		log.Printf("Error loading reports: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, reports)
}

func (s *APIServer) getResults(w http.ResponseWriter, r *http.Request) {
	filter := &models.ResultFilter{}

	if v := r.URL.Query().Get("port"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid port parameter", http.StatusBadRequest)
			return
		}

		filter.Port = port
	}

	if v := r.URL.Query().Get("open"); v != "" {
		open, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "Invalid open parameter", http.StatusBadRequest)
			return
		}

		filter.Open = &open
	}

	results, err := s.store.GetResults(r.Context(), filter)
	if err != nil {
		if errors.Is(err, store.ErrNoReports) {
			http.Error(w, "No scan reports yet", http.StatusNotFound)
			return
		}

		log.Printf("Error loading results: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, results)
}

func (s *APIServer) startScan(w http.ResponseWriter, r *http.Request) {
	var req models.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req = s.applyDefaults(req)

	if req.Target == "" {
		http.Error(w, "Target is required", http.StatusBadRequest)
		return
	}

	// Reject misconfigured requests up front; a scan that dies on
	// validation inside runScan would only surface in the logs.
	if err := scan.ValidateRequest(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if s.status.Running {
		s.mu.Unlock()
		http.Error(w, "A scan is already running", http.StatusConflict)

		return
	}

	scanner := s.newScanner(s.onProgress)
	s.scanner = scanner
	s.status = ScanStatus{
		Running:    true,
		Target:     req.Target,
		Total:      req.EndPort - req.StartPort + 1,
		LastUpdate: time.Now(),
	}
	s.mu.Unlock()

	go s.runScan(scanner, req)

	writeJSONStatus(w, http.StatusAccepted, map[string]string{"status": "started"})
}

func (s *APIServer) stopScan(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	scanner := s.scanner
	running := s.status.Running
	s.mu.RUnlock()

	if !running || scanner == nil {
		http.Error(w, "No scan is running", http.StatusConflict)
		return
	}

	scanner.Stop()

	writeJSONStatus(w, http.StatusAccepted, map[string]string{"status": "stopping"})
}

func (s *APIServer) runScan(scanner scan.Scanner, req models.ScanRequest) {
	ctx := context.Background()

	report, err := scanner.Scan(ctx, req)

	s.mu.Lock()
	s.status.Running = false
	s.status.LastUpdate = time.Now()
	s.scanner = nil
	s.mu.Unlock()

	if err != nil {
		log.Printf("Scan of %s failed: %v", req.Target, err)
		return
	}

	if err := s.store.SaveReport(ctx, report); err != nil {
		log.Printf("Failed to save report for %s: %v", req.Target, err)
	}
}

func (s *APIServer) onProgress(ev models.ProgressEvent) {
	s.mu.Lock()
	s.status.Completed = ev.Completed
	s.status.Total = ev.Total
	s.status.LastUpdate = time.Now()
	s.mu.Unlock()

	s.hub.broadcast(ev)
}

func (s *APIServer) applyDefaults(req models.ScanRequest) models.ScanRequest {
	if req.StartPort == 0 && req.EndPort == 0 {
		req.StartPort = s.defaults.StartPort
		req.EndPort = s.defaults.EndPort
	}

	if req.Concurrency == 0 {
		req.Concurrency = s.defaults.Concurrency
	}

	if req.Timeout == 0 {
		req.Timeout = s.defaults.Timeout
	}

	if req.RateLimit == 0 {
		req.RateLimit = s.defaults.RateLimit
	}

	return req
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeJSONStatus(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
