//go:build linux

package proc

import (
	"os"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestResidentKB(t *testing.T) {
	status := []byte("Name:\tfirefox\nVmPeak:\t  123456 kB\nVmRSS:\t    2048 kB\nThreads:\t42\n")
	kb, ok := residentKB(status)
	if !ok || kb != 2048 {
		t.Errorf("residentKB = (%d, %v), want (2048, true)", kb, ok)
	}
	if _, ok := residentKB([]byte("Name:\tkthreadd\n")); ok {
		t.Error("residentKB without VmRSS line should not succeed")
	}
}

func TestFormatMemory(t *testing.T) {
	tests := []struct {
		kb   int
		want string
	}{
		{512, "512 KB"},
		{1023, "1023 KB"},
		{1024, "1 MB"},
		{2048, "2 MB"},
		{3500, "3 MB"},
	}
	for _, tt := range tests {
		if got := formatMemory(tt.kb); got != tt.want {
			t.Errorf("formatMemory(%d) = %q, want %q", tt.kb, got, tt.want)
		}
	}
}

func TestFormatCmdline(t *testing.T) {
	short := formatCmdline([]byte("python3\x00server.py\x00"))
	if short != "python3 server.py" {
		t.Errorf("formatCmdline = %q, want %q", short, "python3 server.py")
	}

	long := formatCmdline([]byte(strings.Repeat("ü", 210)))
	if !utf8.ValidString(long) {
		t.Fatalf("formatCmdline split a multibyte rune: %q", long)
	}
	if n := utf8.RuneCountInString(long); n != maxDetailCmdline+1 {
		// 200 characters plus the ellipsis mark.
		t.Errorf("formatCmdline long input = %d chars, want %d", n, maxDetailCmdline+1)
	}
	if !strings.HasSuffix(long, "…") {
		t.Errorf("formatCmdline long input = %q, want trailing ellipsis", long)
	}
}

func TestCPUSeconds(t *testing.T) {
	// comm contains a space and parens on purpose; utime=150 stime=50.
	stat := []byte("1234 (tmux: server) S 1 1234 1234 0 -1 4194304 500 0 0 0 150 50 0 0 20 0 1 0 12345 1000000 200 18446744073709551615")
	secs, ok := cpuSeconds(stat)
	if !ok || secs != 2.0 {
		t.Errorf("cpuSeconds = (%v, %v), want (2, true)", secs, ok)
	}
	if _, ok := cpuSeconds([]byte("garbage")); ok {
		t.Error("cpuSeconds on garbage should not succeed")
	}
}

func TestDetailsSelf(t *testing.T) {
	d := Details(os.Getpid())
	if d.PID != os.Getpid() {
		t.Fatalf("Details PID = %d, want %d", d.PID, os.Getpid())
	}
	if d.Cmdline == "" {
		t.Error("Details of a live process should include the command line")
	}
	if d.WorkDir == "" {
		t.Error("Details of a live process should include the working dir")
	}
	if d.Memory != "" && !strings.HasSuffix(d.Memory, "B") {
		t.Errorf("Memory = %q, want a KB/MB value", d.Memory)
	}
	if d.CPUTime != "" && !strings.HasSuffix(d.CPUTime, "s") {
		t.Errorf("CPUTime = %q, want a seconds value", d.CPUTime)
	}
}

func TestDetailsVanished(t *testing.T) {
	// PID 0 never exists in /proc; every field should simply be absent.
	d := Details(0)
	if d.Cmdline != "" || d.WorkDir != "" || d.Memory != "" || d.CPUTime != "" {
		t.Errorf("Details(0) = %+v, want only the PID set", d)
	}
}
