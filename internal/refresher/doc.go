// Package refresher publishes the current time in both configured zones on a
// fixed interval.
//
// Take computes a Snapshot from a single clock read. Refresher runs Take
// immediately on Start and then once per interval until its context is
// cancelled, handing every snapshot to a publish callback. It moves between
// two states: StateIdle before Start (and after the loop exits) and
// StateScheduled while a next run is pending.
//
// The interactive widget drives the same Snapshot through its own event-loop
// ticks; Refresher serves the headless watch mode.
package refresher
