// Package widget implements the interactive two-zone clock as a bubbletea
// program.
//
// The model shows the current time in both configured zones, a text input
// whose placeholder reads "<SRC> to <DST>", and the converted result next to
// it. Every edit of the input runs a conversion. Two timers run on the
// bubbletea event loop as tea.Tick messages:
//
//   - the clock tick republishes both clock lines every refresh interval
//   - the reset tick clears input and output a fixed delay after a
//     conversion attempt
//
// Reset ticks carry the generation they were armed with. In restart mode a
// tick whose generation is no longer current is dropped, so only the latest
// attempt's reset fires. In stacked mode, the default, every tick fires.
//
// All state is owned by the event loop; nothing here is shared across
// goroutines.
package widget
