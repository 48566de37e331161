package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/report"
)

const chat = "" +
	"01/01/23, 9:00 AM - Alice: hello world 😊\n" +
	"01/01/23, 9:05 AM - Bob: hi <Media omitted>\n" +
	"02/01/23, 8:00 PM - Alice: https://example.com 😊\n"

func buildReport(t *testing.T, data string) *report.Report {
	t.Helper()
	res, err := parse.ParseChat(data, parse.Options{})
	if err != nil {
		t.Fatalf("ParseChat: %v", err)
	}
	return report.Build(res, 5)
}

func TestSections(t *testing.T) {
	r := buildReport(t, chat)
	sections := Sections(r, Options{})

	wantTitles := []string{"Overview", "Weekdays", "Months", "Years", "Peak hours", "Users", "Response times", "Emojis", "Words"}
	if len(sections) != len(wantTitles) {
		t.Fatalf("section count mismatch: got %d, want %d", len(sections), len(wantTitles))
	}
	for i, s := range sections {
		if s.Title != wantTitles[i] {
			t.Errorf("section %d title mismatch: got %q, want %q", i, s.Title, wantTitles[i])
		}
		if strings.Contains(s.Body, "\033[") {
			t.Errorf("section %q contains ANSI escapes with color off", s.Title)
		}
	}

	t.Run("overview", func(t *testing.T) {
		body := sections[0].Body
		for _, want := range []string{"Total messages   3", "Media shared     1", "Links shared     1", "2023-01-01 .. 2023-01-02"} {
			if !strings.Contains(body, want) {
				t.Errorf("overview missing %q:\n%s", want, body)
			}
		}
	})

	t.Run("users", func(t *testing.T) {
		body := sections[5].Body
		if !strings.Contains(body, "Alice (2) - 66.67%") || !strings.Contains(body, "Bob (1) - 33.33%") {
			t.Errorf("users body mismatch:\n%s", body)
		}
	})

	t.Run("responses", func(t *testing.T) {
		body := sections[6].Body
		if !strings.Contains(body, "Bob") || !strings.Contains(body, "5.00") {
			t.Errorf("responses body mismatch:\n%s", body)
		}
	})
}

func TestRenderReportColor(t *testing.T) {
	r := buildReport(t, chat)

	colored := RenderReport(r, Options{Color: true})
	if !strings.Contains(colored, colorTitle+"== Overview ==") {
		t.Errorf("expected colored title, got:\n%s", colored)
	}

	plain := RenderReport(r, Options{})
	if strings.Contains(plain, "\033[") {
		t.Errorf("plain output contains ANSI escapes")
	}
	if !strings.HasPrefix(plain, "== Overview ==\n") {
		t.Errorf("plain output prefix mismatch:\n%s", plain)
	}
}

func TestRenderReportEmpty(t *testing.T) {
	r := buildReport(t, "no messages here\n")
	if got := RenderReport(r, Options{}); got != "(no messages)\n" {
		t.Errorf("empty render mismatch: got %q", got)
	}
}

func TestRenderWidth(t *testing.T) {
	r := buildReport(t, chat)
	for _, s := range Sections(r, Options{Width: 20}) {
		for _, line := range strings.Split(strings.TrimSuffix(s.Body, "\n"), "\n") {
			if w := runewidth.StringWidth(line); w > 20 {
				t.Errorf("section %q line wider than 20 (%d): %q", s.Title, w, line)
			}
		}
	}
}

func TestFindSection(t *testing.T) {
	sections := []Section{{Title: "Overview"}, {Title: "Response times"}}
	if s, ok := FindSection(sections, "resp"); !ok || s.Title != "Response times" {
		t.Errorf("FindSection(resp) = %v, %v", s, ok)
	}
	if _, ok := FindSection(sections, "emoji"); ok {
		t.Error("FindSection(emoji) should not match")
	}
}

func TestWrapLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  []string
	}{
		{"no wrap", "hello", 0, []string{"hello"}},
		{"ascii", "abcdef", 4, []string{"abcd", "ef"}},
		{"wide runes", "😊😊😊", 4, []string{"😊😊", "😊"}},
		{"ansi not counted", colorBar + "abc" + colorReset, 3, []string{colorBar + "abc" + colorReset}},
		{"empty", "", 5, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapLine(tt.line, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("wrapLine mismatch: got %q, want %q", got, tt.want)
			}
		})
	}
}
