package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/report"
)

func testModel(t *testing.T) model {
	t.Helper()
	res, err := parse.ParseChat("01/01/23, 9:00 AM - Alice: hello world 😊\n01/01/23, 9:05 AM - Bob: hi\n", parse.Options{})
	if err != nil {
		t.Fatalf("ParseChat: %v", err)
	}
	m := initialModel(report.Build(res, 10), "chat.txt")

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(model)
	if cmd == nil {
		t.Fatal("expected render command after resize")
	}
	next, _ = m.Update(cmd())
	return next.(model)
}

func TestModelPreview(t *testing.T) {
	m := testModel(t)
	if len(m.visible) != len(m.plain) {
		t.Fatalf("visible mismatch: got %d, want %d", len(m.visible), len(m.plain))
	}
	if !strings.Contains(m.preview.View(), "Total messages") {
		t.Errorf("preview should show the overview, got:\n%s", m.preview.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	if m.cursor != 1 || m.previewIdx != 1 {
		t.Errorf("cursor/preview mismatch after down: %d/%d", m.cursor, m.previewIdx)
	}
	if !strings.Contains(m.preview.View(), "Sunday") {
		t.Errorf("preview should show weekdays, got:\n%s", m.preview.View())
	}
}

func TestModelStaleRender(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(sectionsRenderedMsg{width: 1})
	m = next.(model)
	if len(m.colored) == 0 {
		t.Error("stale render replaced current sections")
	}
}

func TestModelFilter(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("weekday")})
	m = next.(model)

	if len(m.visible) != 1 || m.plain[m.visible[0]].Title != "Weekdays" {
		t.Fatalf("filter mismatch: %v", m.visible)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(model)
	if m.copied == nil || m.copied.Title != "Weekdays" {
		t.Errorf("expected Weekdays to be selected, got %v", m.copied)
	}
	if cmd == nil || !m.quitting {
		t.Error("expected quit after selection")
	}
}

func TestAdjustListScroll(t *testing.T) {
	m := model{cursor: 7}
	m.adjustListScroll(5)
	if m.listOffset != 3 {
		t.Errorf("listOffset mismatch: got %d, want 3", m.listOffset)
	}
	m.cursor = 1
	m.adjustListScroll(5)
	if m.listOffset != 1 {
		t.Errorf("listOffset mismatch: got %d, want 1", m.listOffset)
	}
}
