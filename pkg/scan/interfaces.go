package scan

import (
	"context"

	"github.com/mfreeman451/portscan/pkg/models"
)

//go:generate mockgen -destination=mock_scan.go -package=scan github.com/mfreeman451/portscan/pkg/scan Prober,Scanner

// Prober performs one bounded connect attempt against target:port and
// classifies the outcome. A non-nil error is scan-fatal (host
// resolution); recoverable connection faults are recorded on the
// returned PortResult instead, and the scan continues.
type Prober interface {
	Probe(ctx context.Context, target string, port int) (models.PortResult, error)
}

// Scanner runs one scan to completion or cancellation.
type Scanner interface {
	// Scan probes every port in the request and returns the final report.
	// The report is nil only for scan-fatal or configuration errors.
	Scan(ctx context.Context, req models.ScanRequest) (*models.ScanReport, error)
	// Stop requests cooperative cancellation; safe to call concurrently
	// and more than once.
	Stop()
}

// ProgressFunc observes one probe completion. The coordinator invokes it
// from its aggregation loop, never concurrently.
type ProgressFunc func(models.ProgressEvent)
