package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/Zuo-Peng/chat-analyzer/internal/render"
	"github.com/Zuo-Peng/chat-analyzer/internal/report"
)

// sectionsRenderedMsg is sent when an async render at a new width completes.
type sectionsRenderedMsg struct {
	width    int
	sections []render.Section
}

func renderSectionsCmd(r *report.Report, width int) tea.Cmd {
	return func() tea.Msg {
		return sectionsRenderedMsg{
			width:    width,
			sections: render.Sections(r, render.Options{Width: width, Color: true}),
		}
	}
}

func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.Style = stylePanelBorder
	return vp
}
