package main

import (
	"strings"
	"testing"

	"peakfetch/ascii"
	"peakfetch/sysinfo"
)

func testSnapshot() *sysinfo.Snapshot {
	return &sysinfo.Snapshot{
		OSName:      "Debian GNU/Linux 12 (bookworm)",
		Kernel:      "6.1.0-18-amd64",
		Hostname:    "testhost",
		Uptime:      "1h 1m 1s",
		RAM:         "2.00/8.00 Go",
		CPU:         "Intel(R) Core(TM) i5-8250U CPU @ 1.60GHz",
		GPU:         sysinfo.NotAvailable,
		GPUPresent:  false,
		Disk:        sysinfo.NotAvailable,
		Temperature: sysinfo.NotAvailable,
	}
}

func TestBuildInfoLinesOrder(t *testing.T) {
	lines := buildInfoLines(testSnapshot())

	// 8 informational lines plus two blank trailer lines
	if len(lines) != 10 {
		t.Fatalf("got %d lines; want 10", len(lines))
	}

	wantLabels := []string{"OS", "Kernel", "Hostname", "Uptime", "RAM", "CPU", "Disk", "Temp"}
	for i, label := range wantLabels {
		plain := ansiRegex.ReplaceAllString(lines[i], "")
		if !strings.HasPrefix(plain, label+": ") {
			t.Errorf("line %d = %q; want label %q", i, plain, label)
		}
	}
	if lines[8] != "" || lines[9] != "" {
		t.Errorf("trailer lines = %q, %q; want blanks", lines[8], lines[9])
	}
}

func TestBuildInfoLinesWithGPU(t *testing.T) {
	snap := testSnapshot()
	snap.GPU = "Intel Corporation UHD Graphics 620"
	snap.GPUPresent = true

	lines := buildInfoLines(snap)
	if len(lines) != 11 {
		t.Fatalf("got %d lines; want 11", len(lines))
	}

	plain := ansiRegex.ReplaceAllString(lines[6], "")
	if plain != "GPU: Intel Corporation UHD Graphics 620" {
		t.Errorf("line 6 = %q; want the GPU line between CPU and Disk", plain)
	}
	if next := ansiRegex.ReplaceAllString(lines[7], ""); !strings.HasPrefix(next, "Disk: ") {
		t.Errorf("line 7 = %q; want Disk after GPU", next)
	}
}

func TestBuildInfoLinesGPUAbsent(t *testing.T) {
	lines := buildInfoLines(testSnapshot())
	for i, line := range lines {
		if strings.Contains(ansiRegex.ReplaceAllString(line, ""), "GPU") {
			t.Errorf("line %d contains a GPU entry despite absence: %q", i, line)
		}
	}
}

func TestRenderReportPairing(t *testing.T) {
	banner := ascii.Banner()
	lines := renderReport(banner, buildInfoLines(testSnapshot()))

	// 7 art lines paired with the first 7 report lines, then the
	// remaining report lines without art
	if len(lines) != 10 {
		t.Fatalf("got %d lines; want 10", len(lines))
	}
	for i := 0; i < len(banner); i++ {
		if !strings.Contains(lines[i], sysinfo.ColorCyan) {
			t.Errorf("line %d = %q; want banner art", i, lines[i])
		}
	}
	plain := ansiRegex.ReplaceAllString(lines[7], "")
	if !strings.HasPrefix(strings.TrimLeft(plain, " "), "Temp: ") {
		t.Errorf("line 7 = %q; want the Temp line padded without art", plain)
	}
	if strings.Contains(lines[7], sysinfo.ColorCyan) {
		t.Errorf("line 7 = %q; want no banner art", lines[7])
	}
}

func TestRenderReportTrailersAreClean(t *testing.T) {
	lines := renderReport(ascii.Banner(), buildInfoLines(testSnapshot()))

	if lines[8] != "" || lines[9] != "" {
		t.Errorf("trailer lines = %q, %q; want empty with no trailing whitespace", lines[8], lines[9])
	}
	for i, line := range lines {
		if line != strings.TrimRight(line, " ") {
			t.Errorf("line %d has trailing whitespace: %q", i, line)
		}
	}
}

func TestBannerShape(t *testing.T) {
	banner := ascii.Banner()
	if len(banner) != 7 {
		t.Fatalf("banner has %d lines; want 7", len(banner))
	}
	width := getVisibleWidth(banner[0])
	for i, line := range banner {
		if getVisibleWidth(line) != width {
			t.Errorf("banner line %d width = %d; want %d", i, getVisibleWidth(line), width)
		}
	}
}

func TestGetVisibleWidth(t *testing.T) {
	colored := colorize("OS", sysinfo.ColorBlue)
	if got := getVisibleWidth(colored); got != 2 {
		t.Errorf("getVisibleWidth(colored OS) = %d; want 2", got)
	}
	if got := getVisibleWidth("45.0°C"); got != 6 {
		t.Errorf("getVisibleWidth(45.0°C) = %d; want 6", got)
	}
}
