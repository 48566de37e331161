package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// renderList renders the left panel: the section titles matching the filter.
func (m model) renderList(width, height int) string {
	if len(m.visible) == 0 {
		return lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No sections")
	}

	var lines []string
	for i, idx := range m.visible {
		if i < m.listOffset {
			continue
		}
		if len(lines) >= height {
			break
		}
		lines = append(lines, formatSectionLine(m.plain[idx].Title, width, i == m.cursor))
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

func formatSectionLine(title string, width int, selected bool) string {
	title = runewidth.Truncate(title, max(width-2, 0), "")
	if selected {
		return styleListSelected.Render("> " + title)
	}
	return "  " + styleListNormal.Render(title)
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	if listHeight < 1 {
		listHeight = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+listHeight {
		m.listOffset = m.cursor - listHeight + 1
	}
}

// applyFilter keeps the sections whose title or body contains query.
func (m *model) applyFilter(query string) {
	m.query = query
	q := strings.ToLower(strings.TrimSpace(query))
	visible := make([]int, 0, len(m.plain))
	for i, s := range m.plain {
		if q == "" || strings.Contains(strings.ToLower(s.Title), q) || strings.Contains(strings.ToLower(s.Body), q) {
			visible = append(visible, i)
		}
	}
	m.visible = visible
	m.cursor = 0
	m.listOffset = 0
}

func (m model) header() string {
	r := m.report
	return styleHeader.Render(fmt.Sprintf("%s  %d messages, %d participants", m.title, r.TotalMessages, len(r.Users)))
}
