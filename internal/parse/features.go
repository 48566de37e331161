package parse

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

const MediaPlaceholder = "<Media omitted>"

var urlRe = regexp.MustCompile(`https?://(?:[-\p{L}\p{N}_.]|%[0-9a-fA-F]{2})+`)

// NewMessage extracts the per-message features from a body.
func NewMessage(ts time.Time, sender, body string) Message {
	return Message{
		Timestamp: ts,
		Sender:    sender,
		Body:      body,
		Words:     Words(body),
		Emojis:    Emojis(body),
		IsMedia:   IsMedia(body),
		HasLink:   HasLink(body),
	}
}

// Words splits on whitespace only; tokens keep their punctuation and case.
func Words(body string) []string {
	return strings.Fields(body)
}

// Emojis returns every single-code-point emoji in body, in order.
func Emojis(body string) []string {
	var out []string
	for _, r := range body {
		if IsEmoji(r) {
			out = append(out, string(r))
		}
	}
	return out
}

func IsEmoji(r rune) bool {
	return r > unicode.MaxASCII && unicode.Is(emojiTable, r)
}

func IsMedia(body string) bool {
	return strings.Contains(body, MediaPlaceholder)
}

func HasLink(body string) bool {
	return urlRe.MatchString(body)
}
