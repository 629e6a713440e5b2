package main

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/mfreeman451/portscan/pkg/models"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorBlue   = "\033[94m"
	colorGreen  = "\033[92m"
	colorYellow = "\033[93m"
	colorRed    = "\033[91m"
)

const progressBarWidth = 40

// printer renders scan output. Color and the live progress line are
// disabled when stdout is not a terminal.
type printer struct {
	mu       sync.Mutex
	w        io.Writer
	color    bool
	progress bool
	barShown bool
}

func newPrinter(w io.Writer, color, progress bool) *printer {
	return &printer{w: w, color: color, progress: progress}
}

func (p *printer) paint(code, s string) string {
	if !p.color {
		return s
	}

	return code + s + colorReset
}

func (p *printer) banner(target string, startPort, endPort int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.w, p.paint(colorBold+colorBlue, strings.Repeat("=", 60)))
	fmt.Fprintf(p.w, "%s %s\n", p.paint(colorGreen, "[*] Target:"), target)
	fmt.Fprintf(p.w, "%s %d-%d\n", p.paint(colorGreen, "[*] Port range:"), startPort, endPort)
	fmt.Fprintf(p.w, "%s %s\n", p.paint(colorGreen, "[*] Started at:"), time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(p.w, p.paint(colorBold+colorBlue, strings.Repeat("=", 60)))
}

// onProgress is the coordinator's progress hook: it announces open
// ports as they are found and keeps the progress line current.
func (p *printer) onProgress(ev models.ProgressEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ev.Open {
		p.clearBar()
		fmt.Fprintf(p.w, "%s Port %d is open (%s)\n",
			p.paint(colorGreen, "[+]"), ev.Port, ev.Service)
	}

	p.drawBar(ev.Completed, ev.Total)
}

func (p *printer) drawBar(completed, total int) {
	if !p.progress || total == 0 {
		return
	}

	filled := completed * progressBarWidth / total
	bar := strings.Repeat("#", filled) + strings.Repeat("-", progressBarWidth-filled)

	fmt.Fprintf(p.w, "\r%s [%s] %d/%d ports", p.paint(colorBlue, "Scanning"), bar, completed, total)
	p.barShown = true
}

// clearBar erases the progress line so regular output stays on its own
// lines.
func (p *printer) clearBar() {
	if !p.barShown {
		return
	}

	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", progressBarWidth+30))
	p.barShown = false
}

func (p *printer) warnf(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clearBar()
	fmt.Fprintf(p.w, "%s %s\n", p.paint(colorYellow, "[!]"), fmt.Sprintf(format, args...))
}

func (p *printer) errorf(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clearBar()
	fmt.Fprintf(p.w, "%s %s\n", p.paint(colorRed, "[!]"), fmt.Sprintf(format, args...))
}

func (p *printer) report(report *models.ScanReport) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.clearBar()

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.paint(colorBold+colorBlue, "Scan results:"))
	fmt.Fprintln(p.w, p.paint(colorBlue, strings.Repeat("-", 60)))

	if len(report.OpenPorts) == 0 {
		fmt.Fprintln(p.w, p.paint(colorYellow, "No open ports found"))
	} else {
		fmt.Fprintf(p.w, "%s\n", p.paint(colorBold, fmt.Sprintf("%-10s%-10s%s", "PORT", "STATE", "SERVICE")))

		for _, result := range report.OpenPorts {
			line := fmt.Sprintf("%-10d%-10s%s", result.Port, "open", result.Service)
			fmt.Fprintln(p.w, p.paint(colorGreen, line))
		}
	}

	for _, fault := range report.Faults {
		fmt.Fprintf(p.w, "%s Port %d: %s\n", p.paint(colorRed, "[!]"), fault.Port, fault.Error)
	}

	fmt.Fprintf(p.w, "\n%s %d/%d ports in %.2f seconds\n",
		p.paint(colorBlue, "[*] Scanned"), report.ScannedPorts, report.TotalPorts,
		report.Duration.Seconds())

	if report.Interrupted {
		fmt.Fprintln(p.w, p.paint(colorYellow, "[!] Scan was interrupted before completion"))
	}
}
