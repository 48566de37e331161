package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrBadTimestamp = errors.New("malformed timestamp")

// TimestampError is returned when a line matches the message grammar but its
// timestamp does not fit the day/month/year 12-hour layout.
type TimestampError struct {
	Line int
	Text string
	Err  error
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("line %d: %s %q: %v", e.Line, ErrBadTimestamp, e.Text, e.Err)
}

func (e *TimestampError) Unwrap() []error {
	return []error{ErrBadTimestamp, e.Err}
}

// strictTimestampRe is the exact "dd/mm/yy, hh:mm AM" layout. The grammar in
// messageRe is looser (4-digit years, no space before the meridiem).
var strictTimestampRe = regexp.MustCompile(
	`^(3[01]|[12][0-9]|0[1-9]|[1-9])/(1[0-2]|0[1-9]|[1-9])/([0-9]{2}), (1[0-2]|0[1-9]|[1-9]):([0-5][0-9])[\s\p{Zs}]+([AaPp][Mm])$`,
)

func parseTimestamp(s string) (time.Time, error) {
	m := strictTimestampRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, errors.New("does not match dd/mm/yy, hh:mm AM/PM")
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	yy, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])

	// same pivot as strptime %y
	year := 2000 + yy
	if yy >= 69 {
		year = 1900 + yy
	}

	pm := strings.EqualFold(m[6], "pm")
	hour %= 12
	if pm {
		hour += 12
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, fmt.Errorf("day %d out of range for month %d", day, month)
	}
	return t, nil
}
