//go:build linux

package proc

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

var selfPID = os.Getpid()

// Snapshot reads /proc and returns the invoking user's processes, filtered
// of session infrastructure and sorted case-insensitively by name. Entries
// that vanish or refuse reads mid-scan are skipped, never an error; the
// only failure mode is /proc itself being unreadable.
func Snapshot() ([]Process, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, fmt.Errorf("read process table: %w", err)
	}

	uid := os.Getuid()
	var procs []Process
	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil || pid == selfPID {
			continue
		}
		if p, ok := readProcess(pid, uid); ok {
			procs = append(procs, p)
		}
	}

	slices.SortStableFunc(procs, func(a, b Process) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return procs, nil
}

// readProcess assembles the record for one PID. Any failed read means the
// process exited mid-scan, is off limits, or is filtered; all yield ok=false.
func readProcess(pid, uid int) (Process, bool) {
	dir := "/proc/" + strconv.Itoa(pid)

	status, err := os.ReadFile(dir + "/status")
	if err != nil {
		return Process{}, false
	}
	owner, ok := realUID(status)
	if !ok || owner != uid {
		return Process{}, false
	}

	raw, err := os.ReadFile(dir + "/cmdline")
	if err != nil {
		return Process{}, false
	}
	cmdline := splitCmdline(raw)
	if len(cmdline) == 0 {
		return Process{}, false
	}

	name, title := nameAndTitle(cmdline[0])
	if name == "" || excluded(name) {
		return Process{}, false
	}

	return Process{
		PID:         pid,
		Name:        name,
		Title:       title,
		Description: Describe(cmdline),
	}, true
}

// realUID extracts the real uid from /proc/<pid>/status, the first value
// on the "Uid:" line.
func realUID(status []byte) (int, bool) {
	for line := range strings.Lines(string(status)) {
		if !strings.HasPrefix(line, "Uid:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, false
		}
		uid, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, false
		}
		return uid, true
	}
	return 0, false
}

// splitCmdline turns the NUL-separated /proc cmdline blob into argv.
func splitCmdline(raw []byte) []string {
	s := strings.TrimRight(string(raw), "\x00")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\x00")
}

// nameAndTitle reduces argv[0] to the executable basename. Some programs
// glue flags into the same token, separated by any whitespace; those stay
// visible in the title.
func nameAndTitle(argv0 string) (name, title string) {
	exe, flags := argv0, ""
	if i := strings.IndexFunc(argv0, unicode.IsSpace); i >= 0 {
		exe = argv0[:i]
		flags = strings.TrimLeftFunc(argv0[i:], unicode.IsSpace)
	}
	if exe == "" {
		return "", ""
	}
	name = filepath.Base(exe)
	title = name
	if flags != "" {
		title = name + " " + flags
	}
	return name, title
}
