package scan

import "fmt"

const (
	// MinPort and MaxPort bound every scannable TCP port.
	MinPort = 1
	MaxPort = 65535
)

// PortRange is an inclusive, ascending interval of ports to probe.
type PortRange struct {
	Start int
	End   int
}

// NewPortRange validates the interval and returns it. The zero interval
// conventions of the CLI (defaults) are applied by callers, not here.
func NewPortRange(start, end int) (PortRange, error) {
	if start < MinPort || end > MaxPort || start > end {
		return PortRange{}, fmt.Errorf("%w: %d-%d", ErrInvalidPortRange, start, end)
	}

	return PortRange{Start: start, End: end}, nil
}

// Count returns the number of ports in the range.
func (r PortRange) Count() int {
	return r.End - r.Start + 1
}

// Contains reports whether port falls inside the range.
func (r PortRange) Contains(port int) bool {
	return port >= r.Start && port <= r.End
}

// Ports enumerates the range ascending. The slice is rebuilt on every
// call, so the enumeration is restartable.
func (r PortRange) Ports() []int {
	ports := make([]int, 0, r.Count())
	for port := r.Start; port <= r.End; port++ {
		ports = append(ports, port)
	}

	return ports
}
