package api

import "time"

// ScanStatus describes the scan currently in flight, if any.
type ScanStatus struct {
	Running    bool      `json:"running"`
	Target     string    `json:"target,omitempty"`
	Completed  int       `json:"completed"`
	Total      int       `json:"total"`
	LastUpdate time.Time `json:"last_update"`
}
