// Package convert re-expresses a typed wall-clock time from the source zone
// in the target zone.
//
// The pure functions Anchor and Convert do the zone math: the parsed hour and
// minute replace those of "now" in the source zone (date, seconds and
// nanoseconds are kept), and the resulting instant is formatted in the target
// zone. Offsets are resolved for the anchored date, so daylight-saving rules
// apply per day rather than as a fixed offset.
//
// Converter wraps the pure functions with the rules the UI relies on:
//   - input is trimmed before parsing
//   - the placeholder text counts as no input and yields an empty result
//   - empty input and unparseable input yield the "Invalid format" marker
//   - the clock is read exactly once per conversion
//
// Example usage:
//
//	conv := convert.New(table, clock.RealClock{})
//	res := conv.Convert("12 PM")
//	fmt.Println(res.Text) // "09:00 AM" when converting EST to PST
package convert
