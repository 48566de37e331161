package parse

import (
	"regexp"
	"strings"
)

type LineKind int

const (
	LineBlank LineKind = iota
	LineSystem
	LineMessage
	LineUnmatched
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineSystem:
		return "system"
	case LineMessage:
		return "message"
	default:
		return "unmatched"
	}
}

// messageRe matches "<d>/<m>/<y>, <h>:<mm> <AP> - <sender>: <body>".
// Only the start of the line is anchored; the body runs to the end.
var messageRe = regexp.MustCompile(
	`^([0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4}, [0-9]{1,2}:[0-9]{2}[\s\p{Zs}]?[APMapm]{2}) - (.*?): (.*)`,
)

var systemRes = []*regexp.Regexp{
	regexp.MustCompile(`Messages and calls are end-to-end encrypted`),
	regexp.MustCompile(`Your security code with .* changed`),
	regexp.MustCompile(`Tap to learn more`),
}

// Classify reports what kind of transcript line this is. For LineMessage the
// second return value holds the timestamp text, sender and body.
func Classify(line string) (LineKind, []string) {
	if strings.TrimSpace(line) == "" {
		return LineBlank, nil
	}
	if isSystemNotice(line) {
		return LineSystem, nil
	}
	m := messageRe.FindStringSubmatch(line)
	if m == nil {
		return LineUnmatched, nil
	}
	return LineMessage, m[1:]
}

func isSystemNotice(line string) bool {
	for _, re := range systemRes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
