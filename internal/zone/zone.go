package zone

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// Spec is an unresolved zone entry as it appears in configuration
type Spec struct {
	Label string
	ID    string
}

// Zone is a resolved table entry
type Zone struct {
	Label    string
	ID       string
	Location *time.Location
}

// UnknownZoneError reports a zone identifier the time zone database does not
// recognise
type UnknownZoneError struct {
	Label string
	ID    string
	Err   error
}

func (e *UnknownZoneError) Error() string {
	return fmt.Sprintf("unknown time zone %q for label %q: %v", e.ID, e.Label, e.Err)
}

func (e *UnknownZoneError) Unwrap() error {
	return e.Err
}

// Table maps the two configured labels to their zones. It is immutable once
// built.
type Table struct {
	source Zone
	target Zone
}

// Resolve loads a single zone entry
func Resolve(spec Spec) (Zone, error) {
	label := strings.TrimSpace(spec.Label)
	id := strings.TrimSpace(spec.ID)
	if label == "" {
		return Zone{}, fmt.Errorf("zone %q has empty label", id)
	}
	if id == "" {
		return Zone{}, &UnknownZoneError{Label: label, ID: id, Err: errors.New("empty identifier")}
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return Zone{}, &UnknownZoneError{Label: label, ID: id, Err: err}
	}

	return Zone{Label: label, ID: id, Location: loc}, nil
}

// New resolves both entries and builds the table. Labels must differ since
// they double as lookup keys.
func New(source, target Spec) (*Table, error) {
	src, err := Resolve(source)
	if err != nil {
		return nil, fmt.Errorf("source zone: %w", err)
	}
	dst, err := Resolve(target)
	if err != nil {
		return nil, fmt.Errorf("target zone: %w", err)
	}
	if strings.EqualFold(src.Label, dst.Label) {
		return nil, fmt.Errorf("source and target share label %q", src.Label)
	}

	return &Table{source: src, target: dst}, nil
}

// Source returns the zone users type times in
func (t *Table) Source() Zone {
	return t.source
}

// Target returns the zone conversions are expressed in
func (t *Table) Target() Zone {
	return t.target
}

// Labels returns the source and target labels in table order
func (t *Table) Labels() []string {
	return []string{t.source.Label, t.target.Label}
}

// Reversed returns a table with source and target swapped
func (t *Table) Reversed() *Table {
	return &Table{source: t.target, target: t.source}
}
