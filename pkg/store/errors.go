package store

import "errors"

var (
	// ErrNoReports indicates no scan has completed yet.
	ErrNoReports = errors.New("no scan reports recorded")
)
