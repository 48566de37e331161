package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/Zuo-Peng/chat-analyzer/internal/report"
)

const (
	colorReset  = "\033[0m"
	colorTitle  = "\033[1;34m" // bold blue
	colorBar    = "\033[32m"   // green
	colorDim    = "\033[2m"
	colorNumber = "\033[1m"
)

const (
	defaultBarWidth = 30
	maxLabelWidth   = 24
)

type Options struct {
	Width int  // wrap width (0 = no wrap)
	Color bool // emit ANSI escapes
}

type Section struct {
	Title string
	Body  string
}

// Sections renders each part of the report separately, in display order.
func Sections(r *report.Report, opts Options) []Section {
	p := painter{color: opts.Color}
	barW := defaultBarWidth
	if opts.Width > 0 && opts.Width/2 < barW {
		barW = opts.Width / 2
	}

	sections := []Section{
		{"Overview", overview(r, p)},
		{"Weekdays", chart(r.Weekdays, barW, p)},
		{"Months", chart(r.Months, barW, p)},
		{"Years", chart(r.Years, barW, p)},
		{"Peak hours", chart(r.PeakHours, barW, p)},
		{"Users", users(r, barW, p)},
		{"Response times", responses(r, p)},
		{"Emojis", table(r.TopEmojis, "Emoji", p)},
		{"Words", table(r.TopWords, "Word", p)},
	}
	if opts.Width > 0 {
		for i := range sections {
			sections[i].Body = wrapText(sections[i].Body, opts.Width)
		}
	}
	return sections
}

// FindSection looks a section up by case-insensitive title prefix.
func FindSection(sections []Section, name string) (Section, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range sections {
		if strings.HasPrefix(strings.ToLower(s.Title), name) {
			return s, true
		}
	}
	return Section{}, false
}

// RenderReport renders every section with a title line.
func RenderReport(r *report.Report, opts Options) string {
	if r.Empty() {
		return "(no messages)\n"
	}
	var b strings.Builder
	for i, s := range Sections(r, opts) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(RenderSection(s, opts.Color))
	}
	return b.String()
}

func RenderSection(s Section, color bool) string {
	p := painter{color: color}
	return p.paint(colorTitle, "== "+s.Title+" ==") + "\n" + s.Body
}

type painter struct {
	color bool
}

func (p painter) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + colorReset
}

func overview(r *report.Report, p painter) string {
	var b strings.Builder
	row := func(label string, value any) {
		fmt.Fprintf(&b, "%s %s\n", runewidth.FillRight(label, 16), p.paint(colorNumber, fmt.Sprint(value)))
	}
	row("Total messages", r.TotalMessages)
	row("Total words", r.TotalWords)
	row("Media shared", r.MediaShared)
	row("Links shared", r.LinksShared)
	row("Participants", len(r.Users))
	if !r.Empty() {
		row("Period", r.First.Format("2006-01-02")+" .. "+r.Last.Format("2006-01-02"))
	}
	l := r.Lines
	b.WriteString(p.paint(colorDim, fmt.Sprintf("lines=%d blank=%d system=%d unmatched=%d bad_timestamp=%d",
		l.Total, l.Blank, l.System, l.Unmatched, l.BadTimestamp)))
	b.WriteString("\n")
	return b.String()
}

func chart(counts []report.Count, barW int, p painter) string {
	if len(counts) == 0 {
		return p.paint(colorDim, "(none)") + "\n"
	}
	labelW, maxN := 0, 0
	for _, c := range counts {
		labelW = max(labelW, runewidth.StringWidth(c.Label))
		maxN = max(maxN, c.Count)
	}
	labelW = min(labelW, maxLabelWidth)

	var b strings.Builder
	for _, c := range counts {
		label := runewidth.FillRight(runewidth.Truncate(c.Label, labelW, "…"), labelW)
		fmt.Fprintf(&b, "%s %s %d\n", label, p.paint(colorBar, bar(c.Count, maxN, barW)), c.Count)
	}
	return b.String()
}

func bar(n, maxN, width int) string {
	if maxN <= 0 || n <= 0 {
		return ""
	}
	w := n * width / maxN
	if w == 0 {
		w = 1
	}
	return strings.Repeat("█", w)
}

func users(r *report.Report, barW int, p painter) string {
	if len(r.Users) == 0 {
		return p.paint(colorDim, "(none)") + "\n"
	}
	counts := make([]report.Count, 0, len(r.Users))
	for _, u := range r.Users {
		counts = append(counts, report.Count{
			Label: fmt.Sprintf("%s (%d) - %.2f%%", u.User, u.Messages, u.Percent),
			Count: u.Messages,
		})
	}
	return chart(counts, barW, p)
}

func responses(r *report.Report, p painter) string {
	if len(r.Responses) == 0 {
		return p.paint(colorDim, "(no replies between different senders)") + "\n"
	}
	nameW := len("User")
	for _, s := range r.Responses {
		nameW = min(max(nameW, runewidth.StringWidth(s.User)), maxLabelWidth)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n", runewidth.FillRight("User", nameW), "Avg minutes", "Replies")
	for _, s := range r.Responses {
		name := runewidth.FillRight(runewidth.Truncate(s.User, nameW, "…"), nameW)
		fmt.Fprintf(&b, "%s  %11.2f  %7d\n", name, s.AvgMinutes, s.Samples)
	}
	return b.String()
}

func table(counts []report.Count, header string, p painter) string {
	if len(counts) == 0 {
		return p.paint(colorDim, "(none)") + "\n"
	}
	labelW := runewidth.StringWidth(header)
	for _, c := range counts {
		labelW = min(max(labelW, runewidth.StringWidth(c.Label)), maxLabelWidth)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", runewidth.FillRight(header, labelW), "Count")
	for _, c := range counts {
		label := runewidth.FillRight(runewidth.Truncate(c.Label, labelW, "…"), labelW)
		fmt.Fprintf(&b, "%s  %5d\n", label, c.Count)
	}
	return b.String()
}

func wrapText(text string, width int) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	var out []string
	for _, l := range lines {
		out = append(out, wrapLine(l, width)...)
	}
	return strings.Join(out, "\n") + "\n"
}

// wrapLine breaks a single line into multiple lines that fit within maxWidth
// visible columns, skipping ANSI escape sequences when measuring width.
func wrapLine(line string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{line}
	}

	var result []string
	var cur strings.Builder
	visW := 0

	i := 0
	for i < len(line) {
		if i+1 < len(line) && line[i] == '\033' && line[i+1] == '[' {
			j := i + 2
			for j < len(line) && line[j] != 'm' {
				j++
			}
			if j < len(line) {
				j++ // include 'm'
			}
			cur.WriteString(line[i:j])
			i = j
			continue
		}

		r, size := utf8.DecodeRuneInString(line[i:])
		rw := runewidth.RuneWidth(r)

		if visW+rw > maxWidth {
			result = append(result, cur.String())
			cur.Reset()
			visW = 0
		}

		cur.WriteRune(r)
		visW += rw
		i += size
	}

	if cur.Len() > 0 {
		result = append(result, cur.String())
	}

	if len(result) == 0 {
		return []string{""}
	}
	return result
}
