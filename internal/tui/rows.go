//go:build linux

package tui

import (
	"strconv"

	"github.com/asidko/fastkill/internal/display"
	"github.com/asidko/fastkill/internal/killer"
	"github.com/asidko/fastkill/internal/selection"
)

const maxTitle = 64

// row addresses one renderable line of the list: a group header
// (member == -1), a group member, or a singleton.
type row struct {
	entry  int
	member int
}

func (r row) header() bool { return r.member < 0 }

// buildRows flattens grouped entries into the visible line sequence:
// group headers followed by their members, singletons on their own.
func buildRows(entries []display.Entry) []row {
	var rows []row
	for i, e := range entries {
		if !e.IsGroup() {
			rows = append(rows, row{entry: i, member: 0})
			continue
		}
		rows = append(rows, row{entry: i, member: -1})
		for j := range e.Members {
			rows = append(rows, row{entry: i, member: j})
		}
	}
	return rows
}

// checkbox renders the selection mark for a process row.
func checkbox(selected bool) string {
	if selected {
		return "[x]"
	}
	return "[ ]"
}

// groupCheckbox renders the tri-state mark for a group header.
func groupCheckbox(state selection.TriState) string {
	switch state {
	case selection.All:
		return "[x]"
	case selection.None:
		return "[ ]"
	}
	return "[-]"
}

// killLabel names the kill action for the current escalation level.
func killLabel(level killer.Level, count int) string {
	n := strconv.Itoa(count)
	if level == killer.Kill {
		return "Force Kill (" + n + ")"
	}
	return "Kill Selected (" + n + ")"
}

// truncate shortens a string to max characters, marking the cut. Counts
// runes so multibyte titles never split mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
