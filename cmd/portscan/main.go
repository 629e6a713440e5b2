// cmd/portscan/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/mfreeman451/portscan/pkg/models"
	"github.com/mfreeman451/portscan/pkg/scan"
)

const (
	defaultPortRange   = "1-1024"
	defaultConcurrency = 50
	defaultTimeout     = time.Second
)

// Exit classes callers depend on.
const (
	exitOK          = 0
	exitInterrupted = 1
	exitFatal       = 2
)

var errBadPortRange = errors.New("port range must be START-END or a single port")

func main() {
	os.Exit(run())
}

func run() int {
	portRange := flag.String("p", defaultPortRange, "Port range to scan (e.g., 20-100)")
	concurrency := flag.Int("c", defaultConcurrency, "Number of concurrent probes")
	timeout := flag.Duration("t", defaultTimeout, "Timeout for each port probe")
	rateLimit := flag.Int("rate", 0, "Probe rate limit in probes/sec (0 = unlimited)")
	jsonOut := flag.Bool("json", false, "Print the final report as JSON")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		return exitFatal
	}

	target := flag.Arg(0)

	startPort, endPort, err := parsePortRange(*portRange)
	if err != nil {
		fmt.Fprintf(os.Stderr, "portscan: %v\n", err)
		return exitFatal
	}

	tty := isatty.IsTerminal(os.Stdout.Fd())
	out := newPrinter(os.Stdout, tty && !*noColor, tty && !*jsonOut)

	// Keep engine logs off the interactive output.
	log.SetOutput(os.Stderr)
	if tty {
		log.SetOutput(io.Discard)
	}

	req := models.ScanRequest{
		Target:      target,
		StartPort:   startPort,
		EndPort:     endPort,
		Concurrency: *concurrency,
		Timeout:     *timeout,
		RateLimit:   *rateLimit,
	}

	var opts []scan.Option
	if !*jsonOut {
		out.banner(target, startPort, endPort)
		opts = append(opts, scan.WithProgress(out.onProgress))
	}

	coordinator := scan.NewCoordinator(opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		out.warnf("Interrupt received, shutting down gracefully...")
		coordinator.Stop()

		// A second signal aborts without waiting for stragglers.
		<-sigChan
		os.Exit(exitFatal)
	}()

	report, err := coordinator.Scan(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, scan.ErrHostResolution):
			out.errorf("Hostname could not be resolved: %s", target)
		default:
			out.errorf("Scan failed: %v", err)
		}

		return exitFatal
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")

		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "portscan: encoding report: %v\n", err)
			return exitFatal
		}
	} else {
		out.report(report)
	}

	if report.Interrupted {
		return exitInterrupted
	}

	return exitOK
}

// parsePortRange accepts "START-END" or a single port.
func parsePortRange(s string) (startPort, endPort int, err error) {
	parts := strings.SplitN(s, "-", 2)

	startPort, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errBadPortRange, s)
	}

	if len(parts) == 1 {
		return startPort, startPort, nil
	}

	endPort, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errBadPortRange, s)
	}

	return startPort, endPort, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: portscan [flags] TARGET

Concurrent TCP connect scanner.

Flags:
`)
	flag.PrintDefaults()
}
