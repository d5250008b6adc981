package convert

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zgpcy/worktime/internal/clock"
	"github.com/zgpcy/worktime/internal/timeparse"
	"github.com/zgpcy/worktime/internal/zone"
)

const (
	// Layout is the output format: zero-padded 12-hour clock with an
	// upper-case meridiem suffix
	Layout = "03:04 PM"

	// InvalidFormat is shown in place of a result when the input cannot be
	// interpreted
	InvalidFormat = "Invalid format"
)

// Outcome classifies a conversion attempt
type Outcome int

const (
	// OutcomeNone means there was nothing to convert (placeholder text)
	OutcomeNone Outcome = iota
	// OutcomeConverted means the input parsed and was converted
	OutcomeConverted
	// OutcomeInvalid means the input was empty or matched no format
	OutcomeInvalid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeConverted:
		return "converted"
	case OutcomeInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the outcome of one conversion attempt
type Result struct {
	Text    string
	Outcome Outcome
	// Instant is the converted time in the target zone. Zero unless
	// Outcome is OutcomeConverted.
	Instant time.Time
	// Blank is set when the trimmed input was empty. Blank results carry
	// the invalid marker but do not arm the auto-reset.
	Blank bool
}

// SchedulesReset reports whether the UI should arm the auto-reset timer
// after showing this result
func (r Result) SchedulesReset() bool {
	return r.Outcome != OutcomeNone && !r.Blank
}

// Anchor places w on the current date of now in the from zone
func Anchor(w timeparse.WallClock, from *time.Location, now time.Time) time.Time {
	local := now.In(from)
	return time.Date(local.Year(), local.Month(), local.Day(),
		w.Hour, w.Minute, local.Second(), local.Nanosecond(), from)
}

// At returns the anchored instant expressed in the to zone
func At(w timeparse.WallClock, from, to *time.Location, now time.Time) time.Time {
	return Anchor(w, from, now).In(to)
}

// Convert formats the target-zone wall clock for w typed in the from zone
func Convert(w timeparse.WallClock, from, to *time.Location, now time.Time) string {
	return At(w, from, to, now).Format(Layout)
}

// Converter applies the input rules on top of Convert for one direction of
// the zone table
type Converter struct {
	table *zone.Table
	clock clock.Clock
}

// New creates a Converter from table's source zone to its target zone
func New(table *zone.Table, clk clock.Clock) *Converter {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Converter{table: table, clock: clk}
}

// Table returns the zone table this converter reads
func (c *Converter) Table() *zone.Table {
	return c.table
}

// Placeholder is the hint text shown in an empty input, e.g. "EST to PST"
func (c *Converter) Placeholder() string {
	return c.table.Source().Label + " to " + c.table.Target().Label
}

// Reverse returns a converter for the opposite direction sharing the clock
func (c *Converter) Reverse() *Converter {
	return &Converter{table: c.table.Reversed(), clock: c.clock}
}

// Convert interprets raw as a time in the source zone
func (c *Converter) Convert(raw string) Result {
	input := strings.TrimSpace(raw)
	if input == c.Placeholder() {
		return Result{Outcome: OutcomeNone}
	}
	if input == "" {
		return Result{Text: InvalidFormat, Outcome: OutcomeInvalid, Blank: true}
	}

	w, err := timeparse.Parse(input)
	if err != nil {
		return Result{Text: InvalidFormat, Outcome: OutcomeInvalid}
	}

	// single read of the clock; the anchor date must not move mid-conversion
	now := c.clock.Now()
	instant := At(w, c.table.Source().Location, c.table.Target().Location, now)
	return Result{
		Text:    instant.Format(Layout),
		Outcome: OutcomeConverted,
		Instant: instant,
	}
}

// ConvertErr is Convert for non-interactive callers: invalid input comes back
// as an error wrapping timeparse.ErrParseFailure alongside the result
func (c *Converter) ConvertErr(raw string) (Result, error) {
	res := c.Convert(raw)
	if res.Outcome == OutcomeInvalid {
		return res, fmt.Errorf("convert %q: %w", strings.TrimSpace(raw), timeparse.ErrParseFailure)
	}
	return res, nil
}

// IsParseFailure reports whether err came from unparseable input
func IsParseFailure(err error) bool {
	return errors.Is(err, timeparse.ErrParseFailure)
}
