package scan

import "errors"

var (
	// ErrInvalidPortRange rejects a request whose interval is not
	// 1 <= start <= end <= 65535.
	ErrInvalidPortRange = errors.New("invalid port range")

	// ErrInvalidConcurrency rejects a request with fewer than one worker.
	ErrInvalidConcurrency = errors.New("concurrency must be at least 1")

	// ErrInvalidTimeout rejects a request without a positive probe timeout.
	ErrInvalidTimeout = errors.New("timeout must be positive")

	// ErrHostResolution is scan-fatal: the target hostname cannot be
	// resolved, so no port on it can be probed.
	ErrHostResolution = errors.New("host could not be resolved")
)
