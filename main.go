// Package main provides the peakfetch command-line tool for displaying
// local system information next to a fixed ASCII-art banner, with optional
// JSON export.
package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	flag "github.com/ogier/pflag"

	"peakfetch/ascii"
	"peakfetch/sysinfo"
)

// gapSize is the number of spaces between banner and info columns.
const gapSize = 4

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// main collects the system snapshot, renders it alongside the banner and
// optionally exports it as JSON.
func main() {
	ramPercent := flag.Bool("ram-percent", false, "show RAM usage as a percentage instead of used/total")
	showDisk := flag.Bool("disk", false, "include root filesystem usage")
	showTemp := flag.Bool("temp", false, "include CPU temperature")
	exportPath := flag.String("export", "", "write the report as JSON to the given path")
	flag.Parse()

	snap := sysinfo.Collect(sysinfo.Options{
		RAMPercent:  *ramPercent,
		IncludeDisk: *showDisk,
		IncludeTemp: *showTemp,
	})

	displayInfo(ascii.Banner(), snap)

	if *exportPath != "" {
		if err := sysinfo.Export(snap, *exportPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Report exported to %s\n", *exportPath)
	}
}

// buildInfoLines assembles the report lines in display order: the fixed
// prefix, then the GPU line only when enumeration could run, then the fixed
// suffix and two blank trailer lines.
func buildInfoLines(snap *sysinfo.Snapshot) []string {
	label := func(name, value string) string {
		return fmt.Sprintf("%s: %s", colorize(name, sysinfo.ColorBlue), value)
	}

	lines := []string{
		label("OS", snap.OSName),
		label("Kernel", snap.Kernel),
		label("Hostname", snap.Hostname),
		label("Uptime", snap.Uptime),
		label("RAM", snap.RAM),
		label("CPU", snap.CPU),
	}
	if snap.GPUPresent {
		lines = append(lines, label("GPU", snap.GPU))
	}
	lines = append(lines,
		label("Disk", snap.Disk),
		label("Temp", snap.Temperature),
		"",
		"",
	)
	return lines
}

// displayInfo renders the banner and report lines side-by-side, bracketed
// by one blank line before and after.
func displayInfo(banner []string, snap *sysinfo.Snapshot) {
	fmt.Println()
	for _, line := range renderReport(banner, buildInfoLines(snap)) {
		fmt.Println(line)
	}
	fmt.Println()
}

// renderReport pairs banner and report lines by index. Report lines beyond
// the banner are printed with space padding in place of art; banner lines
// beyond the report are printed alone. Lines with no report text are
// trimmed so no whitespace-only tail is emitted.
func renderReport(banner, infoLines []string) []string {
	bannerWidth := 0
	for _, line := range banner {
		if w := getVisibleWidth(line); w > bannerWidth {
			bannerWidth = w
		}
	}

	maxLines := len(banner)
	if len(infoLines) > maxLines {
		maxLines = len(infoLines)
	}

	out := make([]string, 0, maxLines)
	for i := 0; i < maxLines; i++ {
		var bannerLine, infoLine string

		if i < len(banner) {
			bannerLine = banner[i]
			if padding := bannerWidth - getVisibleWidth(bannerLine); padding > 0 {
				bannerLine += strings.Repeat(" ", padding)
			}
		} else {
			bannerLine = strings.Repeat(" ", bannerWidth)
		}

		if i < len(infoLines) {
			infoLine = infoLines[i]
		}

		line := bannerLine + strings.Repeat(" ", gapSize) + infoLine
		if infoLine == "" {
			line = strings.TrimRight(line, " ")
		}
		out = append(out, line)
	}
	return out
}

// getVisibleWidth calculates the display width of a string excluding ANSI
// escape codes, so colored lines align correctly.
func getVisibleWidth(s string) int {
	stripped := ansiRegex.ReplaceAllString(s, "")
	return runewidth.StringWidth(stripped)
}

// colorize wraps text with an ANSI color code and a trailing reset.
func colorize(text, color string) string {
	return color + text + sysinfo.ColorReset
}
