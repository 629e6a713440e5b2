package scan

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"
	"syscall"
	"time"

	"github.com/mfreeman451/portscan/pkg/models"
)

// TCPProber attempts full TCP connects with a per-probe timeout.
type TCPProber struct {
	timeout time.Duration
	dialer  net.Dialer
}

func NewTCPProber(timeout time.Duration) *TCPProber {
	return &TCPProber{timeout: timeout}
}

// Probe dials target:port and classifies the outcome. The connection is
// closed before returning on every path; a probe never holds a socket
// past its own attempt.
func (p *TCPProber) Probe(ctx context.Context, target string, port int) (models.PortResult, error) {
	result := models.PortResult{Port: port}

	// Honor cancellation before spending a connection attempt.
	select {
	case <-ctx.Done():
		return result, nil
	default:
	}

	connCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	addr := net.JoinHostPort(target, strconv.Itoa(port))
	start := time.Now()

	conn, err := p.dialer.DialContext(connCtx, "tcp", addr)
	result.RespTime = time.Since(start)

	if err != nil {
		return classifyDialError(result, target, err)
	}

	result.Open = true
	result.Service = ServiceName(port)

	if err := conn.Close(); err != nil {
		log.Printf("Error closing connection to %s: %v", addr, err)
	}

	return result, nil
}

// classifyDialError maps a dial failure onto the result taxonomy:
// timeouts and refusals are expected closed-port outcomes, resolution
// failures are scan-fatal, everything else is a recoverable per-port
// fault recorded on the result.
func classifyDialError(result models.PortResult, target string, err error) (models.PortResult, error) {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return result, fmt.Errorf("%w: %s", ErrHostResolution, target)
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return result, nil
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return result, nil
	}

	// A probe interrupted by cancellation is not a fault.
	if errors.Is(err, context.Canceled) {
		return result, nil
	}

	result.Error = err.Error()

	return result, nil
}
