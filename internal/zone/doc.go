// Package zone provides the fixed two-entry time zone table.
//
// A Table pairs a source zone with a target zone. Each Zone carries a short
// display label (for example "EST") and an IANA identifier (for example
// "US/Eastern") resolved once through time.LoadLocation. The embedded
// time/tzdata database is linked in so that identifiers resolve on hosts
// without a system zoneinfo directory.
//
// Resolution failures are reported as *UnknownZoneError. An unknown zone is a
// configuration error: callers are expected to abort at startup rather than
// retry per conversion.
//
// Example usage:
//
//	table, err := zone.New(
//		zone.Spec{Label: "EST", ID: "US/Eastern"},
//		zone.Spec{Label: "PST", ID: "US/Pacific"},
//	)
//	if err != nil {
//		log.Fatalf("Failed to build zone table: %v", err)
//	}
//
//	est := table.Source()
//	fmt.Println(time.Now().In(est.Location).Format("03:04 PM"), est.Label)
package zone
