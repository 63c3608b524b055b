package display

import (
	"strings"
	"testing"

	"github.com/asidko/fastkill/internal/proc"
)

func TestGroupPartition(t *testing.T) {
	records := []proc.Process{
		{PID: 10, Name: "firefox"},
		{PID: 11, Name: "firefox"},
		{PID: 20, Name: "python3", Description: "u/app/server.py"},
	}

	entries := Group(records)
	if len(entries) != 2 {
		t.Fatalf("Group returned %d entries, want 2", len(entries))
	}

	firefox := entries[0]
	if firefox.Name != "firefox" || !firefox.IsGroup() || len(firefox.Members) != 2 {
		t.Errorf("firefox entry = %+v, want a group of 2", firefox)
	}
	if firefox.Members[0].PID != 10 || firefox.Members[1].PID != 11 {
		t.Errorf("group member order = %v, want discovery order 10, 11", firefox.Members)
	}

	python := entries[1]
	if python.Name != "python3" || python.IsGroup() {
		t.Errorf("python3 entry = %+v, want a singleton", python)
	}

	// Every input record lands in exactly one entry.
	seen := make(map[int]int)
	for _, e := range entries {
		for _, m := range e.Members {
			seen[m.PID]++
		}
	}
	for _, r := range records {
		if seen[r.PID] != 1 {
			t.Errorf("pid %d appears %d times across entries, want 1", r.PID, seen[r.PID])
		}
	}
}

func TestGroupOrdering(t *testing.T) {
	records := []proc.Process{
		{PID: 1, Name: "Zed"},
		{PID: 2, Name: "alacritty"},
		{PID: 3, Name: "Code"},
		{PID: 4, Name: "code"},
		{PID: 5, Name: "Code"},
	}

	entries := Group(records)
	for i := 1; i < len(entries); i++ {
		a, b := strings.ToLower(entries[i-1].Name), strings.ToLower(entries[i].Name)
		if a > b {
			t.Fatalf("entries not sorted: %q before %q", entries[i-1].Name, entries[i].Name)
		}
	}

	// "Code" and "code" are distinct names; the case-insensitive tie keeps
	// discovery order.
	if entries[1].Name != "Code" || entries[2].Name != "code" {
		t.Errorf("tie order = %q, %q, want Code then code", entries[1].Name, entries[2].Name)
	}
	if len(entries[1].Members) != 2 {
		t.Errorf("Code group has %d members, want 2", len(entries[1].Members))
	}
}

func TestGroupEmpty(t *testing.T) {
	if entries := Group(nil); len(entries) != 0 {
		t.Errorf("Group(nil) = %v, want empty", entries)
	}
}
