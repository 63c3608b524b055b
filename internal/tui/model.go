//go:build linux

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/asidko/fastkill/internal/display"
	"github.com/asidko/fastkill/internal/killer"
	"github.com/asidko/fastkill/internal/proc"
	"github.com/asidko/fastkill/internal/selection"
)

// Model is the interactive process list. Discovery, selection updates and
// kill requests all run on the bubbletea event loop, one at a time.
type Model struct {
	keys    keyMap
	entries []display.Entry
	rows    []row
	sel     *selection.Model
	ctl     *killer.Controller

	cursor     int
	detail     *proc.Detail
	detailPID  int
	refreshSeq int

	width  int
	height int

	err      error
	quitting bool
}

func New() Model {
	return Model{
		keys: defaultKeyMap(),
		ctl:  killer.New(killer.UnixSender{}),
	}
}

// Run starts the interactive process list in the alternate screen.
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return snapshotCmd()
}

// snapshotCmd re-runs the whole discovery and grouping pipeline.
func snapshotCmd() tea.Cmd {
	return func() tea.Msg {
		records, err := proc.Snapshot()
		if err != nil {
			return snapshotMsg{err: err}
		}
		return snapshotMsg{entries: display.Group(records)}
	}
}

// detailCmd fetches extended info for the cursor row.
func detailCmd(pid int) tea.Cmd {
	return func() tea.Msg {
		return detailMsg{pid: pid, detail: proc.Details(pid)}
	}
}

// currentRow returns the row under the cursor.
func (m Model) currentRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// currentProcess returns the process under the cursor, if the cursor is
// on a process row rather than a group header.
func (m Model) currentProcess() (proc.Process, bool) {
	r, ok := m.currentRow()
	if !ok || r.header() {
		return proc.Process{}, false
	}
	return m.entries[r.entry].Members[r.member], true
}
