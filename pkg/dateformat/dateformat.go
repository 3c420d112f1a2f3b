// Package dateformat implements the date-picker's format mini-language.
//
// A format string is a sequence of literal characters interleaved with the
// tokens Y (4-digit year), m (month), d (day), H (hour), i (minute) and
// s (second), each appearing at most once. The same compiled format drives
// both rendering and parsing, so a field's display format is also its input
// format.
package dateformat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fieldpick/fieldpick/pkg/calendar"
)

var (
	// ErrInvalidFormat reports a format string that repeats a token or
	// carries neither a full date token set (Y, m, d) nor a time pair (H, i).
	ErrInvalidFormat = errors.New("invalid format string")

	// ErrNoMatch reports input text that does not fit the format's shape.
	ErrNoMatch = errors.New("text does not match format")

	// ErrInvalidDate reports a matched date outside the calendar,
	// e.g. month 13 or February 30.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime reports a matched hour, minute or second out of range.
	ErrInvalidTime = errors.New("invalid time component")
)

const tokenChars = "YmdHis"

type segmentKind int

const (
	segLiteral segmentKind = iota
	segToken
)

type segment struct {
	kind    segmentKind
	literal string // segLiteral only
	token   byte   // segToken only
}

// Format is a compiled format string: a typed segment list reused for both
// Serialize and Parse, compiled once per field configuration.
type Format struct {
	source   string
	segments []segment
	tokens   map[byte]bool
}

// Compile parses a format string into a Format. It fails with
// ErrInvalidFormat when a token occurs twice or when the format can decode
// neither a date nor a time.
func Compile(format string) (*Format, error) {
	f := &Format{source: format, tokens: make(map[byte]bool)}

	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			f.segments = append(f.segments, segment{kind: segLiteral, literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); i++ {
		c := format[i]
		if strings.IndexByte(tokenChars, c) < 0 {
			lit.WriteByte(c)
			continue
		}
		if f.tokens[c] {
			return nil, fmt.Errorf("%w: token %q appears more than once in %q", ErrInvalidFormat, string(c), format)
		}
		f.tokens[c] = true
		flush()
		f.segments = append(f.segments, segment{kind: segToken, token: c})
	}
	flush()

	if !f.HasDate() && !f.HasTime() {
		return nil, fmt.Errorf("%w: %q has no usable date or time tokens", ErrInvalidFormat, format)
	}
	return f, nil
}

// String returns the source format string.
func (f *Format) String() string { return f.source }

// HasDate reports whether the format carries the full Y, m, d token set.
func (f *Format) HasDate() bool {
	return f.tokens['Y'] && f.tokens['m'] && f.tokens['d']
}

// HasTime reports whether the format carries both the H and i tokens.
func (f *Format) HasTime() bool {
	return f.tokens['H'] && f.tokens['i']
}

// Serialize renders dt according to the format. Two-digit fields are
// zero-padded; the year is written as its plain decimal value. The zero
// DateTime renders as the empty string, representing "no date".
func (f *Format) Serialize(dt calendar.DateTime) string {
	if dt.IsZero() {
		return ""
	}

	var b strings.Builder
	for _, seg := range f.segments {
		if seg.kind == segLiteral {
			b.WriteString(seg.literal)
			continue
		}
		switch seg.token {
		case 'Y':
			b.WriteString(strconv.Itoa(dt.Year))
		case 'm':
			fmt.Fprintf(&b, "%02d", int(dt.Month))
		case 'd':
			fmt.Fprintf(&b, "%02d", dt.Day)
		case 'H':
			fmt.Fprintf(&b, "%02d", dt.Hour)
		case 'i':
			fmt.Fprintf(&b, "%02d", dt.Minute)
		case 's':
			fmt.Fprintf(&b, "%02d", dt.Second)
		}
	}
	return b.String()
}

// Parse decodes text against the format. The match is anchored to the whole
// string: leftover text on either side is ErrNoMatch. When the format has no
// date token set the returned DateTime has zero Year/Month/Day and the
// caller is expected to substitute its own base date (see HasDate); missing
// time tokens decode as zero.
func (f *Format) Parse(text string) (calendar.DateTime, error) {
	captures := make(map[byte]int, len(f.tokens))
	if !match(f.segments, text, captures) {
		return calendar.DateTime{}, fmt.Errorf("%w: %q does not match %q", ErrNoMatch, text, f.source)
	}

	var dt calendar.DateTime
	if f.HasDate() {
		dt.Year = captures['Y']
		dt.Month = time.Month(captures['m'])
		dt.Day = captures['d']
		if dt.Year < 1 || dt.Year > 9999 ||
			dt.Month < time.January || dt.Month > time.December ||
			dt.Day < 1 || dt.Day > calendar.DaysIn(dt.Month, dt.Year) {
			return calendar.DateTime{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, captures['Y'], captures['m'], captures['d'])
		}
	}
	if f.HasTime() {
		dt.Hour = captures['H']
		dt.Minute = captures['i']
		if dt.Hour > 23 || dt.Minute > 59 {
			return calendar.DateTime{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTime, dt.Hour, dt.Minute)
		}
	}
	if f.tokens['s'] {
		dt.Second = captures['s']
		if dt.Second > 59 {
			return calendar.DateTime{}, fmt.Errorf("%w: second %d", ErrInvalidTime, dt.Second)
		}
	}
	return dt, nil
}

// match consumes text against the segment list. Number tokens are greedy
// with single-step backtracking: a 1-2 digit token first tries two digits,
// then one, so "1.2.2024" and "31.12.2024" both match "d.m.Y".
func match(segs []segment, text string, captures map[byte]int) bool {
	if len(segs) == 0 {
		return len(text) == 0
	}

	seg := segs[0]
	if seg.kind == segLiteral {
		if !strings.HasPrefix(text, seg.literal) {
			return false
		}
		return match(segs[1:], text[len(seg.literal):], captures)
	}

	widths := []int{2, 1}
	if seg.token == 'Y' {
		widths = []int{4}
	}
	for _, w := range widths {
		if len(text) < w || !allDigits(text[:w]) {
			continue
		}
		n, err := strconv.Atoi(text[:w])
		if err != nil {
			continue
		}
		captures[seg.token] = n
		if match(segs[1:], text[w:], captures) {
			return true
		}
	}
	delete(captures, seg.token)
	return false
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
