package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	errInvalidDuration    = errors.New("invalid duration")
	errListenAddrRequired = errors.New("listen_addr is required")
	errInvalidConcurrency = errors.New("default_concurrency must be at least 1")
	errInvalidTimeout     = errors.New("default_timeout must be positive")
)

// Duration wraps time.Duration so JSON configs can use either Go
// duration strings ("500ms") or raw nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		// parse numeric as nanoseconds
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %w", errInvalidDuration, err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// DaemonConfig represents the configuration for a portscand instance.
type DaemonConfig struct {
	ListenAddr         string   `json:"listen_addr"`         // e.g., :8090
	DefaultTimeout     Duration `json:"default_timeout"`     // per-probe timeout when a request omits one
	DefaultConcurrency int      `json:"default_concurrency"` // worker count when a request omits one
	DefaultRateLimit   int      `json:"default_rate_limit"`  // probes/sec, 0 = unlimited
	ReportRetention    Duration `json:"report_retention"`    // prune reports older than this, 0 = keep all
}

func (c *DaemonConfig) Validate() error {
	if c.ListenAddr == "" {
		return errListenAddrRequired
	}

	if c.DefaultConcurrency < 1 {
		return errInvalidConcurrency
	}

	if time.Duration(c.DefaultTimeout) <= 0 {
		return errInvalidTimeout
	}

	return nil
}
