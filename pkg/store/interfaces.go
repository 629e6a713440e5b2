// Package store keeps scan reports in memory for the status API.
// Durable persistence is deliberately out of scope.
package store

import (
	"context"
	"time"

	"github.com/mfreeman451/portscan/pkg/models"
)

//go:generate mockgen -destination=mock_store.go -package=store github.com/mfreeman451/portscan/pkg/store Store

// Store defines storage operations for scan reports.
type Store interface {
	// SaveReport records a completed scan report.
	SaveReport(ctx context.Context, report *models.ScanReport) error
	// LatestReport returns the most recent report, or ErrNoReports.
	LatestReport(ctx context.Context) (*models.ScanReport, error)
	// GetReports returns retained reports, newest last.
	GetReports(ctx context.Context) ([]models.ScanReport, error)
	// GetResults returns the latest report's port results matching the filter.
	GetResults(ctx context.Context, filter *models.ResultFilter) ([]models.PortResult, error)
	// PruneReports removes reports whose scan started more than age ago.
	PruneReports(ctx context.Context, age time.Duration) error
}
