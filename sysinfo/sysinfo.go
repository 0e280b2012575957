// Package sysinfo collects local system information for a single report:
// OS identity, kernel release, hostname, uptime, CPU and GPU models, and
// memory, disk and temperature readings. Every collector is best-effort and
// maps failures to a documented fallback string, so collection as a whole
// never fails.
package sysinfo

// ANSI color codes for terminal output formatting
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
)

// Sentinel values used when a collector cannot produce a real reading.
// Each one signals a distinct condition.
const (
	// Unknown marks a value the platform should report but didn't.
	Unknown = "Unknown"

	// NotAvailable marks a reading that was skipped or found no data.
	NotAvailable = "N/A"

	// Unsupported marks a feature the platform cannot report at all,
	// as opposed to one that reported no data.
	Unsupported = "Unsupported on this system."
)

// Options selects the optional readings and display modes for a report.
type Options struct {
	// RAMPercent switches the RAM field from used/total to a percentage.
	RAMPercent bool

	// IncludeDisk enables root filesystem usage reporting.
	IncludeDisk bool

	// IncludeTemp enables CPU temperature reporting.
	IncludeTemp bool
}

// Snapshot holds the collected fields for a single run. It is built once,
// rendered and optionally exported, then discarded; nothing mutates it after
// Collect returns.
type Snapshot struct {
	// OSName is the human-readable OS identifier (PRETTY_NAME from the
	// release descriptor, or the platform family name as a fallback).
	OSName string

	// Kernel is the kernel release string.
	Kernel string

	// Hostname is the local host name.
	Hostname string

	// Uptime is the formatted duration since boot.
	Uptime string

	// RAM is either a used/total string or a percentage, per Options.
	RAM string

	// CPU is the processor model name, or Unknown.
	CPU string

	// GPU is the graphics controller model. It is always set (default
	// NotAvailable) so exports can include it unconditionally; whether the
	// display shows a GPU line is governed by GPUPresent instead.
	GPU string

	// GPUPresent reports whether GPU enumeration could run at all. When
	// false the GPU line is omitted from display entirely.
	GPUPresent bool

	// Disk is the root filesystem usage, or NotAvailable when disabled.
	Disk string

	// Temperature is the CPU temperature reading, NotAvailable when
	// disabled or no sensor matched, or Unsupported on platforms without
	// a sensors API.
	Temperature string
}

// Collect gathers every field in sequence and returns the populated
// snapshot. It never fails: each collector falls back to its sentinel on
// error.
func Collect(opts Options) *Snapshot {
	snap := &Snapshot{
		GPU:         NotAvailable,
		Disk:        NotAvailable,
		Temperature: NotAvailable,
	}

	snap.OSName = collectOSName()
	snap.Kernel = collectKernel()
	snap.Hostname = collectHostname()
	snap.Uptime = collectUptime()
	snap.RAM = collectRAM(opts.RAMPercent)
	snap.CPU = collectCPU()
	snap.GPU, snap.GPUPresent = collectGPU()

	if opts.IncludeDisk {
		snap.Disk = collectDisk()
	}
	if opts.IncludeTemp {
		snap.Temperature = collectTemperature()
	}

	return snap
}
