// Package store pkg/store/memory_store.go
package store

import (
	"context"
	"sync"
	"time"

	"github.com/mfreeman451/portscan/pkg/models"
)

const defaultMaxReports = 100

// InMemoryStore implements Store with a bounded report history.
type InMemoryStore struct {
	mu         sync.RWMutex
	reports    []models.ScanReport
	maxReports int
}

// filterCheck is a type for individual filter checks.
type filterCheck func(*models.PortResult, *models.ResultFilter) bool

// NewInMemoryStore creates a new in-memory store for scan reports.
func NewInMemoryStore() Store {
	return &InMemoryStore{
		reports:    make([]models.ScanReport, 0),
		maxReports: defaultMaxReports,
	}
}

func (s *InMemoryStore) SaveReport(_ context.Context, report *models.ScanReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports = append(s.reports, *report)
	if len(s.reports) > s.maxReports {
		s.reports = s.reports[1:]
	}

	return nil
}

func (s *InMemoryStore) LatestReport(_ context.Context) (*models.ScanReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.reports) == 0 {
		return nil, ErrNoReports
	}

	latest := s.reports[len(s.reports)-1]

	return &latest, nil
}

func (s *InMemoryStore) GetReports(_ context.Context) ([]models.ScanReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]models.ScanReport, len(s.reports))
	copy(reports, s.reports)

	return reports, nil
}

func (s *InMemoryStore) GetResults(_ context.Context, filter *models.ResultFilter) ([]models.PortResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.reports) == 0 {
		return nil, ErrNoReports
	}

	latest := s.reports[len(s.reports)-1]

	filtered := make([]models.PortResult, 0, len(latest.OpenPorts)+len(latest.Faults))

	for _, result := range latest.OpenPorts {
		if s.matchesFilter(&result, filter) {
			filtered = append(filtered, result)
		}
	}

	for _, result := range latest.Faults {
		if s.matchesFilter(&result, filter) {
			filtered = append(filtered, result)
		}
	}

	return filtered, nil
}

// matchesFilter checks if a result matches all filter criteria.
func (*InMemoryStore) matchesFilter(result *models.PortResult, filter *models.ResultFilter) bool {
	if filter == nil {
		return true
	}

	checks := []filterCheck{
		checkPort,
		checkOpen,
	}

	for _, check := range checks {
		if !check(result, filter) {
			return false
		}
	}

	return true
}

// checkPort verifies if the result matches the specified port.
func checkPort(result *models.PortResult, filter *models.ResultFilter) bool {
	return filter.Port == 0 || result.Port == filter.Port
}

// checkOpen verifies if the result matches the specified open state.
func checkOpen(result *models.PortResult, filter *models.ResultFilter) bool {
	return filter.Open == nil || result.Open == *filter.Open
}

func (s *InMemoryStore) PruneReports(_ context.Context, age time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-age)
	kept := make([]models.ScanReport, 0, len(s.reports))

	for _, report := range s.reports {
		if report.StartTime.After(cutoff) {
			kept = append(kept, report)
		}
	}

	s.reports = kept

	return nil
}
