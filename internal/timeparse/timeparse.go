// Package timeparse turns short user-typed strings such as "5 PM" or "15:30"
// into a date-less hour and minute.
package timeparse

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrParseFailure is returned when no accepted format matches the whole input.
// It is an expected outcome of typing, not an exceptional one.
var ErrParseFailure = errors.New("invalid format")

// WallClock is an hour/minute pair with no date attached
type WallClock struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// String renders the pair in 24-hour form
func (w WallClock) String() string {
	return fmt.Sprintf("%02d:%02d", w.Hour, w.Minute)
}

// Format is one accepted input pattern
type Format struct {
	Name   string
	Layout string
	// TwelveHour formats require an AM/PM marker and an hour of 1-12.
	TwelveHour bool
}

// blankRun matches the whitespace between hour and meridiem. time.Parse only
// lets a literal space stretch, so runs of tabs or spaces become one space.
var blankRun = regexp.MustCompile(`\s+`)

// Formats lists the accepted patterns in priority order. The first one that
// consumes the entire input wins.
var Formats = []Format{
	{Name: "12-hour", Layout: "3 PM", TwelveHour: true},
	{Name: "12-hour with minutes", Layout: "3:4 PM", TwelveHour: true},
	{Name: "24-hour", Layout: "15"},
	{Name: "24-hour with minutes", Layout: "15:4"},
}

// Parse interprets s as a time of day. The caller is responsible for trimming
// whitespace and for filtering out empty or placeholder text.
func Parse(s string) (WallClock, error) {
	w, _, err := ParseFormat(s)
	return w, err
}

// ParseFormat is Parse that also reports which format matched
func ParseFormat(s string) (WallClock, Format, error) {
	if s == "" {
		return WallClock{}, Format{}, ErrParseFailure
	}

	// Go only recognises upper-case meridiem markers.
	upper := strings.ToUpper(blankRun.ReplaceAllString(s, " "))

	for _, f := range Formats {
		if f.TwelveHour && !validTwelveHour(upper) {
			continue
		}
		t, err := time.Parse(f.Layout, upper)
		if err != nil {
			continue
		}
		return WallClock{Hour: t.Hour(), Minute: t.Minute()}, f, nil
	}

	return WallClock{}, Format{}, fmt.Errorf("%w: %q", ErrParseFailure, s)
}

// validTwelveHour rejects a leading hour of 0, which time.Parse accepts for
// the "3" element but is not a 12-hour clock reading.
func validTwelveHour(s string) bool {
	n, digits := 0, 0
	for digits < len(s) && digits < 2 && s[digits] >= '0' && s[digits] <= '9' {
		n = n*10 + int(s[digits]-'0')
		digits++
	}
	return digits > 0 && n >= 1 && n <= 12
}
