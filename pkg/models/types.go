// Package models pkg/models/types.go
package models

import "time"

// ScanRequest describes one scan: a target host, an inclusive port
// interval, and the limits the engine must respect. It is built once
// from external configuration and never mutated.
type ScanRequest struct {
	Target      string        `json:"target"`
	StartPort   int           `json:"start_port"`
	EndPort     int           `json:"end_port"`
	Concurrency int           `json:"concurrency"`
	Timeout     time.Duration `json:"timeout"`
	RateLimit   int           `json:"rate_limit,omitempty"` // probes/sec, 0 = unlimited
}

// PortResult is the classified outcome of a single probe. Error is set
// only for recoverable per-port connection faults; expected closed-port
// outcomes (refused, timeout) leave it empty.
type PortResult struct {
	Port     int           `json:"port"`
	Open     bool          `json:"open"`
	Service  string        `json:"service,omitempty"`
	RespTime time.Duration `json:"response_time"`
	Error    string        `json:"error,omitempty"`
}

// ScanReport is the frozen summary of one scan. OpenPorts and Faults are
// sorted ascending by port regardless of probe completion order.
type ScanReport struct {
	Target       string        `json:"target"`
	OpenPorts    []PortResult  `json:"open_ports"`
	Faults       []PortResult  `json:"faults,omitempty"`
	TotalPorts   int           `json:"total_ports"`
	ScannedPorts int           `json:"scanned_ports"`
	StartTime    time.Time     `json:"start_time"`
	Duration     time.Duration `json:"duration"`
	Interrupted  bool          `json:"interrupted"`
}

// ProgressEvent is emitted once per probe completion.
type ProgressEvent struct {
	Port      int    `json:"port"`
	Open      bool   `json:"open"`
	Service   string `json:"service,omitempty"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// ResultFilter defines criteria for retrieving port results from a store.
type ResultFilter struct {
	Port int
	Open *bool
}
