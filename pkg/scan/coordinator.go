package scan

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/mfreeman451/portscan/pkg/models"
)

// Coordinator dispatches probes over a port range with bounded
// concurrency, aggregates their results, and assembles the final
// report. One Coordinator runs one scan; Stop cancels it cooperatively.
type Coordinator struct {
	prober   Prober
	progress ProgressFunc
	done     chan struct{}
	stopOnce sync.Once
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithProber overrides the default TCP prober.
func WithProber(p Prober) Option {
	return func(c *Coordinator) {
		c.prober = p
	}
}

// WithProgress registers a per-completion progress observer.
func WithProgress(fn ProgressFunc) Option {
	return func(c *Coordinator) {
		c.progress = fn
	}
}

func NewCoordinator(opts ...Option) *Coordinator {
	c := &Coordinator{
		done: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Stop requests cooperative cancellation. Workers stop taking new ports
// immediately; in-flight probes are bounded by their own timeout.
// Results collected so far are preserved in the final report.
func (c *Coordinator) Stop() {
	c.stopOnce.Do(func() {
		close(c.done)
	})
}

// probeOutcome pairs a probe's result with its scan-fatal error, if any.
type probeOutcome struct {
	result models.PortResult
	err    error
}

// ValidateRequest checks a scan request's configuration. It performs no
// network activity, so callers can reject bad requests before committing
// to a scan.
func ValidateRequest(req models.ScanRequest) error {
	if _, err := NewPortRange(req.StartPort, req.EndPort); err != nil {
		return err
	}

	if req.Concurrency < 1 {
		return ErrInvalidConcurrency
	}

	if req.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	return nil
}

// Scan validates the request, probes every port in the range under the
// configured concurrency limit, and returns the report. A report is
// produced on natural completion and on cancellation (Interrupted=true);
// configuration and host-resolution errors return a nil report.
func (c *Coordinator) Scan(ctx context.Context, req models.ScanRequest) (*models.ScanReport, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	rng := PortRange{Start: req.StartPort, End: req.EndPort}

	prober := c.prober
	if prober == nil {
		prober = NewTCPProber(req.Timeout)
	}

	var limiter *rate.Limiter
	if req.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(req.RateLimit), req.RateLimit)
	}

	scanCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Propagate Stop into the scan context so in-flight probes observe
	// a single cancellation signal.
	go func() {
		select {
		case <-c.done:
			cancel()
		case <-scanCtx.Done():
		}
	}()

	total := rng.Count()
	start := time.Now()

	log.Printf("Starting scan of %d ports on %s (concurrency=%d, timeout=%v)",
		total, req.Target, req.Concurrency, req.Timeout)

	portChan := make(chan int, req.Concurrency)
	results := make(chan probeOutcome, req.Concurrency)

	var wg sync.WaitGroup
	for i := 0; i < req.Concurrency; i++ {
		wg.Add(1)

		go c.runWorker(scanCtx, &wg, prober, req.Target, portChan, results)
	}

	go c.feedPorts(scanCtx, rng, limiter, portChan)

	go func() {
		wg.Wait()
		close(results)
	}()

	state := newScanState(total)

	var fatal error

	for outcome := range results {
		if outcome.err != nil {
			// Scan-fatal: stop dispatching, drain in-flight probes.
			if fatal == nil {
				fatal = outcome.err

				cancel()
			}

			continue
		}

		// Straggler completions after a fatal error are drained without
		// being recorded or reported; no report will be produced.
		if fatal != nil {
			continue
		}

		completed := state.record(outcome.result)

		if c.progress != nil {
			c.progress(models.ProgressEvent{
				Port:      outcome.result.Port,
				Open:      outcome.result.Open,
				Service:   outcome.result.Service,
				Completed: completed,
				Total:     total,
			})
		}
	}

	if fatal != nil {
		log.Printf("Scan of %s aborted: %v", req.Target, fatal)
		return nil, fatal
	}

	report := state.report(req.Target, start)

	log.Printf("Scan of %s finished: %d/%d ports probed, %d open, %d faults in %v (interrupted=%v)",
		req.Target, report.ScannedPorts, report.TotalPorts, len(report.OpenPorts),
		len(report.Faults), report.Duration, report.Interrupted)

	return report, nil
}

func (c *Coordinator) runWorker(ctx context.Context, wg *sync.WaitGroup, prober Prober, target string, ports <-chan int, results chan<- probeOutcome) {
	defer wg.Done()

	for {
		select {
		case port, ok := <-ports:
			if !ok {
				return
			}

			result, err := prober.Probe(ctx, target, port)
			results <- probeOutcome{result: result, err: err}
		case <-ctx.Done():
			return
		case <-c.done:
			return
		}
	}
}

func (c *Coordinator) feedPorts(ctx context.Context, rng PortRange, limiter *rate.Limiter, ports chan<- int) {
	defer close(ports)

	for port := rng.Start; port <= rng.End; port++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return
			}
		}

		select {
		case ports <- port:
		case <-ctx.Done():
			return
		case <-c.done:
			return
		}
	}
}

// scanState aggregates probe completions for one scan. All mutation
// happens on the coordinator's collection loop; the results channel
// serializes concurrent probe completions before they reach it.
type scanState struct {
	total   int
	scanned int
	open    []models.PortResult
	faults  []models.PortResult
}

func newScanState(total int) *scanState {
	return &scanState{total: total}
}

// record folds one completion into the state and returns the completed
// count for progress reporting.
func (s *scanState) record(result models.PortResult) int {
	s.scanned++

	if result.Open {
		s.open = append(s.open, result)
	} else if result.Error != "" {
		s.faults = append(s.faults, result)
	}

	return s.scanned
}

// report freezes the state into a ScanReport, sorting results ascending
// by port regardless of completion order.
func (s *scanState) report(target string, start time.Time) *models.ScanReport {
	sort.Slice(s.open, func(i, j int) bool {
		return s.open[i].Port < s.open[j].Port
	})
	sort.Slice(s.faults, func(i, j int) bool {
		return s.faults[i].Port < s.faults[j].Port
	})

	return &models.ScanReport{
		Target:       target,
		OpenPorts:    s.open,
		Faults:       s.faults,
		TotalPorts:   s.total,
		ScannedPorts: s.scanned,
		StartTime:    start,
		Duration:     time.Since(start),
		Interrupted:  s.scanned < s.total,
	}
}
