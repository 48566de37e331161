package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/Zuo-Peng/chat-analyzer/internal/render"
	"github.com/Zuo-Peng/chat-analyzer/internal/report"
)

type model struct {
	report      *report.Report
	title       string
	plain       []render.Section // uncolored, unwrapped; used for filtering and copying
	colored     []render.Section // rendered for the current preview width
	visible     []int            // indices into plain
	query       string
	cursor      int
	listOffset  int
	filterInput textinput.Model
	preview     viewport.Model
	previewIdx  int
	width       int
	height      int
	ready       bool
	quitting    bool
	copied      *render.Section
}

func initialModel(r *report.Report, title string) model {
	ti := textinput.New()
	ti.Placeholder = "Filter sections..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	m := model{
		report:      r,
		title:       title,
		plain:       render.Sections(r, render.Options{}),
		filterInput: ti,
		preview:     viewport.New(0, 0),
		previewIdx:  -1,
	}
	m.applyFilter("")
	return m
}

// Run starts the TUI and blocks until it exits.
// If the user picks a section, its plain text is copied to the clipboard.
func Run(r *report.Report, title string) error {
	p := tea.NewProgram(initialModel(r, title), tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	fm := finalModel.(model)
	if fm.copied != nil {
		return copySection(*fm.copied)
	}
	return nil
}

func copySection(s render.Section) error {
	text := render.RenderSection(s, false)
	if err := clipboard.WriteAll(text); err != nil {
		fmt.Print(text)
		return nil
	}
	fmt.Printf("Copied %q section to clipboard\n", s.Title)
	return nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.preview = newViewport(m.previewWidth(), m.panelHeight())
		m.previewIdx = -1
		return m, renderSectionsCmd(m.report, m.previewWidth())

	case sectionsRenderedMsg:
		if msg.width != m.previewWidth() {
			return m, nil // stale render
		}
		m.colored = msg.sections
		m.previewIdx = -1
		m.showCurrent()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Enter):
			if idx, ok := m.current(); ok {
				s := m.plain[idx]
				m.copied = &s
				m.quitting = true
				return m, tea.Quit
			}

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll(m.panelHeight())
				m.showCurrent()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
				m.adjustListScroll(m.panelHeight())
				m.showCurrent()
			}
			return m, nil

		case key.Matches(msg, keys.PreviewUp):
			m.preview.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PreviewDn):
			m.preview.LineDown(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.preview.LineUp(m.panelHeight())
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.preview.LineDown(m.panelHeight())
			return m, nil
		}

		// Pass remaining keys to text input
		var tiCmd tea.Cmd
		m.filterInput, tiCmd = m.filterInput.Update(msg)
		cmds = append(cmds, tiCmd)

		if q := m.filterInput.Value(); q != m.query {
			m.applyFilter(q)
			m.showCurrent()
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if !m.ready || len(m.visible) == 0 {
			return m, nil
		}

		region, itemIdx := m.hitTest(msg.X, msg.Y)

		switch {
		case region == regionList && msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			if itemIdx >= 0 && itemIdx < len(m.visible) && m.cursor != itemIdx {
				m.cursor = itemIdx
				m.adjustListScroll(m.panelHeight())
				m.showCurrent()
			}
			return m, nil

		case region == regionPreview && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown):
			var vpCmd tea.Cmd
			m.preview, vpCmd = m.preview.Update(msg)
			return m, vpCmd
		}

		return m, nil
	}

	return m, tea.Batch(cmds...)
}

func (m model) current() (int, bool) {
	if len(m.visible) == 0 || m.cursor >= len(m.visible) {
		return -1, false
	}
	return m.visible[m.cursor], true
}

// showCurrent loads the selected section into the preview if it changed.
func (m *model) showCurrent() {
	idx, ok := m.current()
	if !ok {
		m.preview.SetContent("")
		m.previewIdx = -1
		return
	}
	if idx == m.previewIdx || idx >= len(m.colored) {
		return
	}
	m.preview.SetContent(m.colored[idx].Body)
	m.preview.GotoTop()
	m.previewIdx = idx
}

func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	previewW := m.previewWidth()
	panelH := m.panelHeight()

	top := lipgloss.JoinHorizontal(lipgloss.Top, m.filterInput.View(), "  ", m.header())

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	m.preview.Width = previewW
	m.preview.Height = panelH
	previewPanel := styleActiveBorder.
		Width(previewW).
		Height(panelH).
		Render(m.preview.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, previewPanel)

	return lipgloss.JoinVertical(lipgloss.Left, top, panels, m.statusBar())
}

func (m model) listWidth() int {
	if m.width <= 0 {
		return 20
	}
	w := m.width*25/100 - 4
	if w < 16 {
		w = 16
	}
	return w
}

func (m model) previewWidth() int {
	if m.width <= 0 {
		return 60
	}
	w := m.width*75/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// Subtract input row (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}

type mouseRegion int

const (
	regionNone mouseRegion = iota
	regionList
	regionPreview
)

// hitTest maps terminal coordinates to a panel region and list item index.
func (m model) hitTest(x, y int) (mouseRegion, int) {
	pH := m.panelHeight()
	contentYStart := 2 // input row (1) + top border (1)
	contentYEnd := contentYStart + pH - 1

	if y < contentYStart || y > contentYEnd {
		return regionNone, -1
	}
	relY := y - contentYStart

	lw := m.listWidth()
	listBoxRight := lw + 1

	if x >= 1 && x <= lw {
		return regionList, m.listOffset + relY
	}

	if x > listBoxRight+1 {
		return regionPreview, -1
	}

	return regionNone, -1
}

func (m model) statusBar() string {
	parts := []string{
		fmt.Sprintf("%d/%d sections", len(m.visible), len(m.plain)),
		"click/up/dn navigate",
		"scroll/C-u/C-d section",
		"Enter copy section",
		"Esc quit",
	}
	return styleStatusBar.Render(strings.Join(parts, " | "))
}
