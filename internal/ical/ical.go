// Package ical parses the RFC 5545 subset that booking platforms publish as
// availability feeds: VEVENT blocks carrying SUMMARY, DESCRIPTION, DTSTART,
// DTEND and UID. It is deliberately tolerant; platform exports disagree on
// folding, parameters and escaping, so parsing is line-prefix based rather
// than grammar based.
package ical

import (
	"strings"
	"time"
)

// RawEvent is a single VEVENT after unfolding and unescaping. Start and End
// are dates: date-time values are truncated to their calendar day since
// booking feeds describe nights, not times.
type RawEvent struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	UID         string
}

// ParseResult carries the events of one feed plus the count of blocks that
// had to be skipped for missing or malformed dates.
type ParseResult struct {
	Events        []RawEvent
	ParseFailures int
}

// Parse splits raw feed text into events. It is a pure function of its
// input; a malformed event is counted and skipped, never fatal.
func Parse(text string) ParseResult {
	var res ParseResult
	if strings.TrimSpace(text) == "" {
		return res
	}

	var (
		inEvent bool
		ev      RawEvent
		valid   bool
	)
	for _, line := range UnfoldLines(text) {
		line = strings.TrimRight(line, " \t")
		switch {
		case line == "BEGIN:VEVENT":
			inEvent = true
			ev = RawEvent{}
			valid = true
		case line == "END:VEVENT":
			if !inEvent {
				continue
			}
			inEvent = false
			if !valid || ev.Start.IsZero() || ev.End.IsZero() {
				res.ParseFailures++
				continue
			}
			res.Events = append(res.Events, ev)
		case inEvent:
			name, value, ok := splitContentLine(line)
			if !ok {
				continue
			}
			switch name {
			case "SUMMARY":
				ev.Summary = UnescapeText(value)
			case "DESCRIPTION":
				ev.Description = UnescapeText(value)
			case "UID":
				ev.UID = strings.TrimSpace(value)
			case "DTSTART":
				t, err := ParseDate(value)
				if err != nil {
					valid = false
					continue
				}
				ev.Start = t
			case "DTEND":
				t, err := ParseDate(value)
				if err != nil {
					valid = false
					continue
				}
				ev.End = t
			}
		}
	}
	return res
}

// splitContentLine separates a content line into its property name and
// value, discarding parameters such as ;VALUE=DATE or ;TZID=....
func splitContentLine(line string) (name, value string, ok bool) {
	colon := strings.Index(line, ":")
	if colon == -1 {
		return "", "", false
	}
	name = line[:colon]
	value = line[colon+1:]
	if semi := strings.Index(name, ";"); semi != -1 {
		name = name[:semi]
	}
	return strings.ToUpper(strings.TrimSpace(name)), value, true
}

// ParseDate accepts the date layouts seen in platform feeds: 20060102,
// 20060102T150405 and the same with a trailing Z. Date-times are truncated
// to midnight UTC.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSuffix(strings.TrimSpace(value), "Z")
	var lastErr error
	for _, layout := range []string{"20060102", "20060102T150405"} {
		t, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// UnfoldLines unfolds folded lines without pulling in a full parser.
// A line starting with a space or tab continues the previous line.
func UnfoldLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	rawLines := strings.Split(text, "\n")
	var lines []string
	for _, line := range rawLines {
		if len(lines) > 0 && (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) {
			lines[len(lines)-1] += strings.TrimLeft(line, " \t")
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// UnescapeText reverses iCalendar text escaping: \, \; \n \N \\.
func UnescapeText(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			sb.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n', 'N':
			sb.WriteByte('\n')
		case ',', ';', '\\':
			sb.WriteByte(s[i])
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
