//go:build linux

package proc

import (
	"bytes"
	"os"
	"strconv"
	"strings"
)

// USER_HZ; fixed at 100 on Linux regardless of the kernel tick rate.
const clockTicks = 100

const maxDetailCmdline = 200

// Detail holds best-effort extended info about one process. An empty field
// means the corresponding read failed; callers render what is present.
type Detail struct {
	PID     int
	Cmdline string
	WorkDir string
	Memory  string
	CPUTime string
}

// Details gathers extended info for a PID. Every sub-read stands on its
// own: a process that vanished halfway through still yields the fields
// read so far.
func Details(pid int) Detail {
	d := Detail{PID: pid}
	dir := "/proc/" + strconv.Itoa(pid)

	if raw, err := os.ReadFile(dir + "/cmdline"); err == nil {
		d.Cmdline = formatCmdline(raw)
	}

	if cwd, err := os.Readlink(dir + "/cwd"); err == nil {
		d.WorkDir = cwd
	}

	if status, err := os.ReadFile(dir + "/status"); err == nil {
		if kb, ok := residentKB(status); ok {
			d.Memory = formatMemory(kb)
		}
	}

	if stat, err := os.ReadFile(dir + "/stat"); err == nil {
		if secs, ok := cpuSeconds(stat); ok {
			d.CPUTime = strconv.FormatFloat(secs, 'f', 1, 64) + "s"
		}
	}

	return d
}

// formatCmdline turns the NUL-separated cmdline blob into one display
// string, cut at 200 characters. Truncation counts runes so multibyte
// arguments never split mid-character.
func formatCmdline(raw []byte) string {
	cmd := strings.ReplaceAll(strings.TrimRight(string(raw), "\x00"), "\x00", " ")
	if runes := []rune(cmd); len(runes) > maxDetailCmdline {
		cmd = string(runes[:maxDetailCmdline]) + "…"
	}
	return cmd
}

// residentKB extracts the VmRSS value in kilobytes from /proc/<pid>/status.
// Kernel threads have no VmRSS line.
func residentKB(status []byte) (int, bool) {
	for line := range strings.Lines(string(status)) {
		if !strings.HasPrefix(line, "VmRSS:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, false
		}
		kb, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, false
		}
		return kb, true
	}
	return 0, false
}

func formatMemory(kb int) string {
	if kb >= 1024 {
		return strconv.Itoa(kb/1024) + " MB"
	}
	return strconv.Itoa(kb) + " KB"
}

// cpuSeconds sums utime and stime from /proc/<pid>/stat. The comm field
// may contain spaces, so parsing starts after its closing paren.
func cpuSeconds(stat []byte) (float64, bool) {
	i := bytes.LastIndexByte(stat, ')')
	if i < 0 || i+2 >= len(stat) {
		return 0, false
	}
	// utime and stime are stat fields 14 and 15; after comm and its
	// trailing space the state field is index 0, so they land at 11 and 12.
	fields := strings.Fields(string(stat[i+2:]))
	if len(fields) < 13 {
		return 0, false
	}
	utime, err := strconv.ParseUint(fields[11], 10, 64)
	if err != nil {
		return 0, false
	}
	stime, err := strconv.ParseUint(fields[12], 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(utime+stime) / clockTicks, true
}
