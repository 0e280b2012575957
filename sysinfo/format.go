// Package sysinfo - Formatting utilities
package sysinfo

import "fmt"

// gib is one gibibyte in bytes (1024^3).
const gib = 1 << 30

// FormatUptime formats a duration in seconds as "{d}d {h}h {m}m {s}s",
// dropping the day component when the duration is under one day. The
// remainder cascades through 86400, 3600 and 60 in that order.
//
// Example: FormatUptime(90061) returns "1d 1h 1m 1s"
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	seconds %= 86400
	hours := seconds / 3600
	seconds %= 3600
	minutes := seconds / 60
	seconds %= 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}

// FormatGiBPair formats used and total byte counts as a "used/total Go"
// pair, two-decimal fixed point. "Go" (gigaoctets) is the literal unit
// suffix this tool displays.
//
// Example: FormatGiBPair(2<<30, 8<<30) returns "2.00/8.00 Go"
func FormatGiBPair(used, total uint64) string {
	return fmt.Sprintf("%.2f/%.2f Go", float64(used)/gib, float64(total)/gib)
}

// FormatPercent formats a usage percentage with one fixed decimal, as
// reported by the OS query (not recomputed).
//
// Example: FormatPercent(25.0) returns "25.0%"
func FormatPercent(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

// FormatDisk formats filesystem usage as a GiB pair with the usage
// percentage appended.
//
// Example: FormatDisk(12<<30, 50<<30, 24.0) returns "12.00/50.00 Go (24.0%)"
func FormatDisk(used, total uint64, percent float64) string {
	return fmt.Sprintf("%s (%s)", FormatGiBPair(used, total), FormatPercent(percent))
}

// FormatTemperature formats a sensor reading in degrees Celsius with one
// fixed decimal.
//
// Example: FormatTemperature(45.0) returns "45.0°C"
func FormatTemperature(value float64) string {
	return fmt.Sprintf("%.1f°C", value)
}
