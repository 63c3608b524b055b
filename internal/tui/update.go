//go:build linux

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/asidko/fastkill/internal/killer"
	"github.com/asidko/fastkill/internal/selection"
)

// Update handles messages and advances the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case snapshotMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.entries = msg.entries
		m.rows = buildRows(msg.entries)
		// Selection is reseeded all-selected on every refresh.
		m.sel = selection.New(msg.entries)
		if m.cursor >= len(m.rows) {
			m.cursor = len(m.rows) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, m.fetchDetail()

	case detailMsg:
		if msg.pid == m.detailPID {
			d := msg.detail
			m.detail = &d
		}
		return m, nil

	case killedMsg:
		out := msg.outcome
		if out.Sent == 0 {
			return m, nil
		}
		// Arm the escalation reset and the post-kill refresh. Either a
		// newer kill or a newer refresh supersedes its predecessor via
		// token/seq, so pending timers never stack.
		m.refreshSeq++
		token, seq := out.ResetToken, m.refreshSeq
		return m, tea.Batch(
			tea.Tick(killer.ResetAfter, func(time.Time) tea.Msg {
				return resetMsg{token: token}
			}),
			tea.Tick(killer.RefreshDelay, func(time.Time) tea.Msg {
				return refreshMsg{seq: seq}
			}),
		)

	case resetMsg:
		m.ctl.Reset(msg.token)
		return m, nil

	case refreshMsg:
		if msg.seq != m.refreshSeq {
			return m, nil
		}
		return m, snapshotCmd()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			return m, m.fetchDetail()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			return m, m.fetchDetail()
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		r, ok := m.currentRow()
		if !ok || m.sel == nil {
			return m, nil
		}
		if r.header() {
			m.sel.ToggleGroup(m.entries[r.entry].Name)
		} else {
			m.sel.ToggleProcess(m.entries[r.entry].Members[r.member].PID)
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleAll):
		if m.sel == nil {
			return m, nil
		}
		if m.sel.AllSelected() {
			m.sel.UnselectAll()
		} else {
			m.sel.SelectAll()
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, snapshotCmd()

	case key.Matches(msg, m.keys.Kill):
		if m.sel == nil {
			return m, nil
		}
		pids := m.sel.SelectedPIDs()
		if len(pids) == 0 {
			return m, nil
		}
		ctl := m.ctl
		return m, func() tea.Msg {
			return killedMsg{outcome: ctl.RequestKill(pids)}
		}
	}

	return m, nil
}

// fetchDetail requests extended info when the cursor sits on a process.
func (m *Model) fetchDetail() tea.Cmd {
	p, ok := m.currentProcess()
	if !ok {
		m.detail = nil
		m.detailPID = 0
		return nil
	}
	if p.PID == m.detailPID {
		return nil
	}
	m.detail = nil
	m.detailPID = p.PID
	return detailCmd(p.PID)
}
