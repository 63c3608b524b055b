//go:build linux

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/asidko/fastkill/internal/killer"
)

// View renders the UI: process list on the left, details for the cursor
// row on the right, help bar at the bottom.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
	}

	listWidth := int(float64(m.width) * 0.62)
	detailsWidth := m.width - listWidth - 3

	listPanel := m.renderListPanel(listWidth)
	detailsPanel := m.renderDetailsPanel(detailsWidth)

	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailsPanel)
	return lipgloss.JoinVertical(lipgloss.Left, mainContent, m.renderHelpBar())
}

func (m Model) renderListPanel(width int) string {
	availableHeight := m.height - 4

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Running Processes"))
	sb.WriteString("\n\n")

	if len(m.rows) == 0 {
		sb.WriteString(descStyle.Render("No processes found"))
	} else {
		visible := availableHeight - 4
		if visible < 1 {
			visible = 1
		}
		start := 0
		if m.cursor >= visible {
			start = m.cursor - visible + 1
		}
		end := start + visible
		if end > len(m.rows) {
			end = len(m.rows)
		}
		for i := start; i < end; i++ {
			sb.WriteString(m.renderRow(i, width-4))
			if i < end-1 {
				sb.WriteString("\n")
			}
		}
	}

	return panelStyle.Width(width).Height(availableHeight).Render(sb.String())
}

// renderRow renders one list line with its checkbox, indentation and
// optional description.
func (m Model) renderRow(idx, width int) string {
	r := m.rows[idx]
	entry := m.entries[r.entry]

	var line string
	switch {
	case r.header():
		mark := groupCheckbox(m.sel.GroupState(entry.Name))
		label := fmt.Sprintf("%s (%d)", truncate(entry.Name, maxTitle), len(entry.Members))
		line = mark + " " + groupStyle.Render(label)

	case entry.IsGroup():
		p := entry.Members[r.member]
		line = "    " + checkbox(m.sel.IsSelected(p.PID)) + " " + truncate(p.Title, maxTitle)
		if p.Description != "" {
			line += " " + descStyle.Render(truncate(p.Description, 40))
		}

	default:
		p := entry.Members[0]
		line = checkbox(m.sel.IsSelected(p.PID)) + " " + groupStyle.Render(truncate(p.Title, maxTitle))
		if p.Description != "" {
			line += " " + descStyle.Render(truncate(p.Description, 40))
		}
	}

	if idx == m.cursor {
		return cursorStyle.Render("> ") + line
	}
	return "  " + line
}

// renderDetailsPanel shows extended info for the process under the cursor.
func (m Model) renderDetailsPanel(width int) string {
	availableHeight := m.height - 4

	p, ok := m.currentProcess()
	if !ok {
		empty := descStyle.
			Width(width - 4).
			Align(lipgloss.Center).
			Render("Select a process")
		return panelStyle.Width(width).Height(availableHeight).Render(empty)
	}

	var sections []string
	sections = append(sections, detailsTitleStyle.Render(fmt.Sprintf("PID %d", p.PID)))
	sections = append(sections, renderDetailSection("PROCESS", p.Title, width-4))
	if p.Description != "" {
		sections = append(sections, renderDetailSection("ARGS", p.Description, width-4))
	}

	if d := m.detail; d != nil && d.PID == p.PID {
		if d.Cmdline != "" {
			sections = append(sections, renderDetailSection("COMMAND", d.Cmdline, width-4))
		}
		if d.WorkDir != "" {
			sections = append(sections, renderDetailSection("WORKDIR", d.WorkDir, width-4))
		}
		if d.Memory != "" {
			sections = append(sections, renderDetailSection("MEMORY", d.Memory, width-4))
		}
		if d.CPUTime != "" {
			sections = append(sections, renderDetailSection("CPU TIME", d.CPUTime, width-4))
		}
	}

	content := strings.Join(sections, "\n\n")
	return panelStyle.Width(width).Height(availableHeight).Render(content)
}

func renderDetailSection(label, value string, width int) string {
	return detailsLabelStyle.Render(label) + "\n" +
		detailsValueStyle.Width(width).Render(value)
}

// renderHelpBar shows the keys plus the kill action label, which carries
// both the selection count and the escalation stage.
func (m Model) renderHelpBar() string {
	var parts []string
	for _, b := range m.keys.ShortHelp() {
		parts = append(parts, fmt.Sprintf("%s %s",
			statusKeyStyle.Render(b.Help().Key), b.Help().Desc))
	}
	helpText := strings.Join(parts, "  ")

	count := 0
	if m.sel != nil {
		count = m.sel.Count()
	}
	label := killLabel(m.ctl.Level(), count)
	if m.ctl.Level() == killer.Kill {
		label = forceLabelStyle.Render(label)
	} else {
		label = killLabelStyle.Render(label)
	}

	left := helpStyle.Render(helpText)
	right := helpStyle.Render(label)
	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}
	return left + strings.Repeat(" ", spacing) + right
}
