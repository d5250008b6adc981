// Package metrics counts conversions, clock refreshes and auto-resets.
//
// The widget has no network surface, so metrics are not scraped over HTTP.
// They live in a private prometheus.Registry and are written in the text
// exposition format to a file (node_exporter textfile collector style) when
// the program exits. Every exported metric carries the worktime_ prefix:
//
//   - worktime_conversions_total{outcome}: conversion attempts by outcome
//     (converted, invalid, none)
//   - worktime_clock_refreshes_total: clock refresh runs
//   - worktime_resets_total{mode}: auto-resets that fired
//   - worktime_last_refresh_timestamp_seconds: time of the last refresh
//   - worktime_build_info: build version labels, always 1
//
// Example usage:
//
//	m := metrics.New()
//	m.ObserveConversion(convert.OutcomeConverted)
//	if err := m.WriteTextfile("/var/lib/node_exporter/worktime.prom"); err != nil {
//		log.Printf("Failed to write metrics: %v", err)
//	}
package metrics
