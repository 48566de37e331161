package parse

import (
	"reflect"
	"testing"
	"time"
)

func TestEmojis(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"no emoji here :)", nil},
		{"😊😊 ok 😂", []string{"😊", "😊", "😂"}},
		{"👍🏽", []string{"👍", "🏽"}},
		{"❤️", []string{"❤"}},
		{"© 2023 ™", []string{"©", "™"}},
		{"🇮🇳", []string{"🇮", "🇳"}},
		{"#1 *", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Emojis(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Emojis(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHasLink(t *testing.T) {
	tests := map[string]bool{
		"https://example.com":              true,
		"go to http://a.b/c?d=1":           true,
		"http://%41%42.com":                true,
		"http://пример.рф":                 true,
		"ftp://example.com":                false,
		"https:// spaced":                  false,
		"plain text with example.com only": false,
	}
	for in, want := range tests {
		if got := HasLink(in); got != want {
			t.Errorf("HasLink(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsMedia(t *testing.T) {
	if !IsMedia("look <Media omitted> lol") {
		t.Error("expected media placeholder to match")
	}
	if IsMedia("<media omitted>") {
		t.Error("placeholder match should be case sensitive")
	}
}

func TestWords(t *testing.T) {
	got := Words("  Hello,\tworld!   ok ")
	want := []string{"Hello,", "world!", "ok"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words mismatch: got %q, want %q", got, want)
	}
}

func TestResponseTracker(t *testing.T) {
	base := time.Date(2023, 1, 1, 9, 0, 0, 0, time.UTC)
	var tr ResponseTracker

	tr, _, ok := tr.Observe("a", base)
	if ok {
		t.Fatal("first message must not produce a sample")
	}
	tr, _, ok = tr.Observe("a", base.Add(time.Minute))
	if ok {
		t.Fatal("same sender must not produce a sample")
	}
	tr, d, ok := tr.Observe("b", base.Add(90*time.Second))
	if !ok || d != 0.5 {
		t.Errorf("reply sample mismatch: got %v, %v; want 0.5, true", d, ok)
	}
	_, d, ok = tr.Observe("a", base)
	if !ok || d != -1.5 {
		t.Errorf("negative sample mismatch: got %v, %v; want -1.5, true", d, ok)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want LineKind
	}{
		{"   ", LineBlank},
		{"Messages and calls are end-to-end encrypted. No one outside of this chat can read them.", LineSystem},
		{"01/01/23, 9:00 AM - Alice: hi", LineMessage},
		{"01/01/23, 9:00 AM - Alice joined using this group's invite link", LineUnmatched},
		{"just a continuation", LineUnmatched},
	}
	for _, tt := range tests {
		if got, _ := Classify(tt.line); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}
