// Package ascii provides the fixed banner art displayed next to the
// system report. The banner is color-coded using ANSI escape sequences
// for terminal display.
package ascii

import "peakfetch/sysinfo"

// Banner returns the mountain glyph as a slice of strings, one string per
// line. The banner is always 7 lines regardless of how many report lines
// accompany it; pairing with report lines is done by index in the caller.
func Banner() []string {
	c := sysinfo.ColorCyan
	r := sysinfo.ColorReset

	return []string{
		c + `        /\        ` + r,
		c + `       /  \       ` + r,
		c + `      /    \      ` + r,
		c + `     /  /\  \     ` + r,
		c + `    /  /  \  \    ` + r,
		c + `   /  /    \  \   ` + r,
		c + `  /__/      \__\  ` + r,
	}
}
