// Package sysinfo - Field collectors
package sysinfo

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/sensors"
)

// osReleasePath is the standard release descriptor, KEY="value" per line.
const osReleasePath = "/etc/os-release"

// collectOSName reads the release descriptor and returns its PRETTY_NAME
// value. If the file or the key is missing it falls back to the platform
// family name; this path always succeeds.
func collectOSName() string {
	if data, err := os.ReadFile(osReleasePath); err == nil {
		if name := parseOSRelease(string(data)); name != "" {
			return name
		}
	}
	return platformFamily()
}

// parseOSRelease scans os-release content for the PRETTY_NAME key and
// returns its unquoted value, or "" if the key is absent.
func parseOSRelease(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "PRETTY_NAME=") {
			continue
		}
		value := strings.TrimPrefix(line, "PRETTY_NAME=")
		return strings.Trim(value, "\"")
	}
	return ""
}

// platformFamily returns a generic OS-family name from the runtime,
// capitalized for display ("linux" -> "Linux").
func platformFamily() string {
	name := runtime.GOOS
	if name == "" {
		return Unknown
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// collectKernel returns the kernel release string.
func collectKernel() string {
	version, err := host.KernelVersion()
	if err != nil || version == "" {
		return Unknown
	}
	return version
}

// collectHostname returns the local host name.
func collectHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return Unknown
	}
	return hostname
}

// collectUptime derives the elapsed time since boot from the OS boot
// timestamp and formats it per FormatUptime.
func collectUptime() string {
	boot, err := host.BootTime()
	if err != nil {
		return Unknown
	}
	now := uint64(time.Now().Unix())
	if now < boot {
		return Unknown
	}
	return FormatUptime(now - boot)
}

// collectRAM reports physical memory usage, either as used/total in
// gigaoctets or as the usage percentage.
func collectRAM(percent bool) string {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Unknown
	}
	if percent {
		return FormatPercent(vm.UsedPercent)
	}
	return FormatGiBPair(vm.Used, vm.Total)
}

// collectCPU returns the first reported processor model name, or Unknown
// when the platform reports no model.
func collectCPU() string {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 {
		return Unknown
	}
	model := strings.TrimSpace(infos[0].ModelName)
	if model == "" {
		return Unknown
	}
	return model
}

// collectGPU enumerates PCI devices via lspci and scans for a display
// controller. The boolean reports whether enumeration could run at all:
// a launch or exit failure yields (NotAvailable, false) and callers omit
// the GPU line, while a clean run with no matching device yields
// (NotAvailable, true) and the line is shown with that value.
func collectGPU() (string, bool) {
	out, err := exec.Command("lspci").Output()
	if err != nil {
		return NotAvailable, false
	}
	name, found := parseGPU(string(out))
	if !found {
		return NotAvailable, true
	}
	return name, true
}

// parseGPU scans lspci output for the first display-controller line and
// returns the device name after the second colon-delimited segment.
func parseGPU(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "VGA compatible controller") &&
			!strings.Contains(line, "3D controller") {
			continue
		}
		parts := strings.SplitN(line, ":", 3)
		if len(parts) < 3 {
			continue
		}
		return strings.TrimSpace(parts[2]), true
	}
	return "", false
}

// collectDisk reports root filesystem usage as used/total with the usage
// percentage appended.
func collectDisk() string {
	usage, err := disk.Usage("/")
	if err != nil {
		return NotAvailable
	}
	return FormatDisk(usage.Used, usage.Total, usage.UsedPercent)
}

// collectTemperature reads hardware temperature sensors and reports the
// first coretemp value. Platforms without a sensors backend return the
// Unsupported sentinel; a working backend with no coretemp group returns
// NotAvailable.
func collectTemperature() string {
	readings, err := sensors.SensorsTemperatures()
	return classifyTemperature(readings, err)
}

// classifyTemperature maps a sensor query result to the displayed value:
// a missing platform backend yields Unsupported, any other failure with no
// readings yields NotAvailable, and otherwise the first coretemp reading is
// formatted (NotAvailable when the group is absent).
func classifyTemperature(readings []sensors.TemperatureStat, err error) string {
	if err != nil && len(readings) == 0 {
		// gopsutil surfaces missing platform support as an internal
		// "not implemented" error; there is no exported value to match.
		if strings.Contains(err.Error(), "not implemented") {
			return Unsupported
		}
		return NotAvailable
	}
	if value, ok := pickCoreTemp(readings); ok {
		return FormatTemperature(value)
	}
	return NotAvailable
}

// pickCoreTemp returns the first reading from the coretemp sensor group.
// Sensor keys are compound ("coretemp_core_0"), so the group is matched by
// prefix.
func pickCoreTemp(readings []sensors.TemperatureStat) (float64, bool) {
	for _, r := range readings {
		if strings.HasPrefix(r.SensorKey, "coretemp") {
			return r.Temperature, true
		}
	}
	return 0, false
}
