// Package selection tracks which processes are marked for termination,
// including the tri-state checkbox each group presents.
package selection

import (
	"github.com/asidko/fastkill/internal/display"
	"github.com/asidko/fastkill/internal/proc"
)

// TriState is the aggregate checkbox state of a group.
type TriState int

const (
	None TriState = iota
	Mixed
	All
)

// Model holds the per-process selection booleans for one snapshot. It is
// rebuilt on every refresh, seeded with everything selected, and owned by
// a single control flow; no locking. Group state is derived from the
// member booleans on read, so a group-driven bulk update can never feed
// back into itself.
type Model struct {
	selected map[int]bool
	groups   map[string][]int // group name -> member PIDs
	order    []int            // every tracked PID, display order
	members  map[int]proc.Process
}

// New builds a model over the grouped entries with every process selected.
func New(entries []display.Entry) *Model {
	m := &Model{
		selected: make(map[int]bool),
		groups:   make(map[string][]int),
		members:  make(map[int]proc.Process),
	}
	for _, e := range entries {
		pids := make([]int, 0, len(e.Members))
		for _, p := range e.Members {
			m.selected[p.PID] = true
			m.members[p.PID] = p
			m.order = append(m.order, p.PID)
			pids = append(pids, p.PID)
		}
		if e.IsGroup() {
			m.groups[e.Name] = pids
		}
	}
	return m
}

// ToggleProcess flips one PID and returns the new selected count.
// Unknown PIDs are ignored.
func (m *Model) ToggleProcess(pid int) int {
	if _, ok := m.selected[pid]; ok {
		m.selected[pid] = !m.selected[pid]
	}
	return m.Count()
}

// ToggleGroup unselects every member when the group is fully selected,
// otherwise selects them all. Returns the new selected count.
func (m *Model) ToggleGroup(name string) int {
	target := m.GroupState(name) != All
	for _, pid := range m.groups[name] {
		m.selected[pid] = target
	}
	return m.Count()
}

// SelectAll marks every tracked process and returns the new count.
func (m *Model) SelectAll() int {
	for pid := range m.selected {
		m.selected[pid] = true
	}
	return m.Count()
}

// UnselectAll clears every mark.
func (m *Model) UnselectAll() int {
	for pid := range m.selected {
		m.selected[pid] = false
	}
	return 0
}

func (m *Model) IsSelected(pid int) bool { return m.selected[pid] }

// GroupState derives the tri-state of a group from its members.
func (m *Model) GroupState(name string) TriState {
	pids := m.groups[name]
	n := 0
	for _, pid := range pids {
		if m.selected[pid] {
			n++
		}
	}
	switch {
	case n == 0:
		return None
	case n == len(pids):
		return All
	}
	return Mixed
}

// SelectedPIDs returns the marked PIDs in display order.
func (m *Model) SelectedPIDs() []int {
	pids := make([]int, 0, len(m.order))
	for _, pid := range m.order {
		if m.selected[pid] {
			pids = append(pids, pid)
		}
	}
	return pids
}

// Selected returns the marked processes in display order.
func (m *Model) Selected() []proc.Process {
	procs := make([]proc.Process, 0, len(m.order))
	for _, pid := range m.order {
		if m.selected[pid] {
			procs = append(procs, m.members[pid])
		}
	}
	return procs
}

// Count is the number of selected processes.
func (m *Model) Count() int {
	n := 0
	for _, on := range m.selected {
		if on {
			n++
		}
	}
	return n
}

// AllSelected reports whether every tracked process is marked. An empty
// model counts as not all-selected, so the master toggle reads "Select All".
func (m *Model) AllSelected() bool {
	return len(m.order) > 0 && m.Count() == len(m.order)
}
