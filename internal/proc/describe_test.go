package proc

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name    string
		cmdline []string
		want    string
	}{
		{"no args", []string{"/usr/bin/firefox"}, ""},
		{"only flags", []string{"/usr/bin/firefox", "-private-window"}, ""},
		{"script path", []string{"python3", "/home/u/app/server.py"}, "u/app/server.py"},
		{"deep path trimmed", []string{"python3", "/srv/data/jobs/app/run.py"}, "jobs/app/run.py"},
		{"short path kept", []string{"cat", "/etc/hosts"}, "/etc/hosts"},
		{"bare script name", []string{"node", "server.js"}, "server.js"},
		{"flags before path", []string{"python3", "-u", "-B", "/a/b/c/d.py"}, "b/c/d.py"},
		{"plain args joined", []string{"sleep", "300"}, "300"},
		{"flags dropped from join", []string{"grep", "-r", "needle"}, "needle"},
		{"relative path", []string{"ruby", "app/jobs/worker.rb"}, "app/jobs/worker.rb"},
		{"empty vector", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Describe(tt.cmdline); got != tt.want {
				t.Errorf("Describe(%v) = %q, want %q", tt.cmdline, got, tt.want)
			}
		})
	}
}

func TestDescribeTruncates(t *testing.T) {
	long := strings.Repeat("x", 80)
	got := Describe([]string{"echo", long})
	if utf8.RuneCountInString(got) != maxDescription {
		t.Errorf("Describe long args = %d chars, want %d", utf8.RuneCountInString(got), maxDescription)
	}
	if !strings.HasPrefix(long, got) {
		t.Errorf("Describe long args = %q, want a prefix of the input", got)
	}
}

func TestDescribeTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("ü", 80)
	got := Describe([]string{"echo", long})
	if !utf8.ValidString(got) {
		t.Fatalf("Describe split a multibyte rune: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != maxDescription {
		t.Errorf("Describe multibyte args = %d chars, want %d", n, maxDescription)
	}
}

func TestLastPathComponents(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/home/u/app/server.py", "u/app/server.py"},
		{"/a/b.py", "/a/b.py"},
		{"a/b/c", "a/b/c"},
		{"x.sh", "x.sh"},
	}
	for _, tt := range tests {
		if got := lastPathComponents(tt.path, 3); got != tt.want {
			t.Errorf("lastPathComponents(%q, 3) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
