package parse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const maxLineSize = 10 * 1024 * 1024 // 10MB

type BadTimestampPolicy int

const (
	// BadTimestampFail aborts the whole parse on the first malformed timestamp.
	BadTimestampFail BadTimestampPolicy = iota
	// BadTimestampSkip drops the line and counts it in LineStats.BadTimestamp.
	BadTimestampSkip
)

func ParsePolicy(s string) (BadTimestampPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fail":
		return BadTimestampFail, nil
	case "skip":
		return BadTimestampSkip, nil
	default:
		return BadTimestampFail, fmt.Errorf("unknown bad timestamp policy %q (want fail or skip)", s)
	}
}

type Options struct {
	OnBadTimestamp BadTimestampPolicy
}

// ParseChat analyzes a whole transcript held in memory.
func ParseChat(data string, opts Options) (*Result, error) {
	return Parse(strings.NewReader(data), opts)
}

func ParseFile(filePath string, opts Options) (*Result, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, opts)
}

// Parse scans the transcript line by line and folds every accepted message
// into a Result. Only a malformed timestamp (under BadTimestampFail) or a read
// error stops the scan; every other odd line is counted and skipped.
func Parse(r io.Reader, opts Options) (*Result, error) {
	result := newResult()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var tracker ResponseTracker
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		result.Lines.Total++

		kind, fields := Classify(line)
		switch kind {
		case LineBlank:
			result.Lines.Blank++
			continue
		case LineSystem:
			result.Lines.System++
			continue
		case LineUnmatched:
			result.Lines.Unmatched++
			continue
		}

		ts, err := parseTimestamp(fields[0])
		if err != nil {
			if opts.OnBadTimestamp == BadTimestampSkip {
				result.Lines.BadTimestamp++
				continue
			}
			return nil, &TimestampError{Line: lineNum, Text: fields[0], Err: err}
		}

		msg := NewMessage(ts, fields[1], fields[2])

		var minutes float64
		var replied bool
		tracker, minutes, replied = tracker.Observe(msg.Sender, msg.Timestamp)
		if replied {
			result.addResponse(msg.Sender, minutes)
		}

		result.add(msg)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("line %d: longer than %d bytes: %w", lineNum+1, maxLineSize, err)
		}
		return nil, err
	}

	result.finish()
	return result, nil
}
