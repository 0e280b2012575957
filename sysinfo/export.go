// Package sysinfo - JSON export
package sysinfo

import (
	"encoding/json"
	"fmt"
	"os"
)

// exportFields fixes the exported key set and order. The GPU value is
// exported unconditionally, even when the display suppresses the GPU line;
// console rendering and export are deliberately asymmetric here.
type exportFields struct {
	OS       string `json:"OS"`
	Kernel   string `json:"Kernel"`
	Hostname string `json:"Hostname"`
	Uptime   string `json:"Uptime"`
	CPU      string `json:"CPU"`
	RAM      string `json:"RAM"`
	GPU      string `json:"GPU"`
	Disk     string `json:"Disk"`
	Temp     string `json:"Temp"`
}

// Export serializes the snapshot as an indented JSON object and writes it
// to path, overwriting any existing file.
func Export(snap *Snapshot, path string) error {
	fields := exportFields{
		OS:       snap.OSName,
		Kernel:   snap.Kernel,
		Hostname: snap.Hostname,
		Uptime:   snap.Uptime,
		CPU:      snap.CPU,
		RAM:      snap.RAM,
		GPU:      snap.GPU,
		Disk:     snap.Disk,
		Temp:     snap.Temperature,
	}

	data, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
