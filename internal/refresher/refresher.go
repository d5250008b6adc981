package refresher

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zgpcy/worktime/internal/clock"
	"github.com/zgpcy/worktime/internal/logger"
	"github.com/zgpcy/worktime/internal/zone"
)

// ClockLayout formats the clock lines, e.g. "03:04 PM EST"
const ClockLayout = "03:04 PM"

// State of the refresh loop
type State int32

const (
	StateIdle State = iota
	StateScheduled
)

func (s State) String() string {
	if s == StateScheduled {
		return "scheduled"
	}
	return "idle"
}

// Snapshot is "now" in both zones of the table, taken from one clock read
type Snapshot struct {
	Source      time.Time
	Target      time.Time
	SourceLabel string
	TargetLabel string
}

// Take builds a Snapshot for table at clk's current instant
func Take(table *zone.Table, clk clock.Clock) Snapshot {
	now := clk.Now()
	return Snapshot{
		Source:      now.In(table.Source().Location),
		Target:      now.In(table.Target().Location),
		SourceLabel: table.Source().Label,
		TargetLabel: table.Target().Label,
	}
}

// SourceLine renders the source clock, e.g. "10:00 AM EST"
func (s Snapshot) SourceLine() string {
	return s.Source.Format(ClockLayout) + " " + s.SourceLabel
}

// TargetLine renders the target clock
func (s Snapshot) TargetLine() string {
	return s.Target.Format(ClockLayout) + " " + s.TargetLabel
}

// Lines returns both clock lines in table order
func (s Snapshot) Lines() []string {
	return []string{s.SourceLine(), s.TargetLine()}
}

// Refresher periodically publishes snapshots
type Refresher struct {
	table    *zone.Table
	clock    clock.Clock
	interval time.Duration
	publish  func(Snapshot)
	logger   *logger.Logger

	started atomic.Bool // Prevent multiple refresh goroutines
	state   atomic.Int32
	runs    atomic.Int64
	wg      sync.WaitGroup
}

// New creates a Refresher. publish is called from the refresh goroutine.
func New(table *zone.Table, clk clock.Clock, interval time.Duration, publish func(Snapshot), log *logger.Logger) *Refresher {
	if clk == nil {
		clk = clock.RealClock{}
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Refresher{
		table:    table,
		clock:    clk,
		interval: interval,
		publish:  publish,
		logger:   log,
	}
}

// Start publishes immediately and then once per interval until ctx is done.
// Only the first call starts a loop.
func (r *Refresher) Start(ctx context.Context) {
	if !r.started.CompareAndSwap(false, true) {
		r.logger.Warn("Clock refresh already started, skipping")
		return
	}

	// Initial publish
	r.refresh()
	r.state.Store(int32(StateScheduled))

	ticker := time.NewTicker(r.interval)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer ticker.Stop()
		defer r.started.Store(false) // Reset on exit
		defer r.state.Store(int32(StateIdle))
		for {
			select {
			case <-ctx.Done():
				r.logger.Info("Stopping clock refresh")
				return
			case <-ticker.C:
				r.refresh()
			}
		}
	}()
}

func (r *Refresher) refresh() {
	snap := Take(r.table, r.clock)
	r.runs.Add(1)
	r.logger.Debug("Refreshing clocks",
		"source", snap.SourceLine(),
		"target", snap.TargetLine())
	if r.publish != nil {
		r.publish(snap)
	}
}

// Wait blocks until the refresh goroutine has exited. A publish already in
// progress when ctx is cancelled completes before Wait returns.
func (r *Refresher) Wait() {
	r.wg.Wait()
}

// State reports whether a next run is pending
func (r *Refresher) State() State {
	return State(r.state.Load())
}

// Runs returns how many snapshots have been published
func (r *Refresher) Runs() int64 {
	return r.runs.Load()
}
