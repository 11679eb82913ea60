package browser

import (
	"time"
)

// DefaultDebounceInterval is the quiet window applied to free-text query
// changes before filtering recomputes.
const DefaultDebounceInterval = 300 * time.Millisecond

// Debouncer delays propagation of a rapidly-changing string until input has
// been quiet for a fixed interval. Each Set restarts the window (classic
// debounce): a fresh timer is started and the returned generation lets a
// consumer discard timers that were superseded before they fired. Old
// timers are never stopped, only outgenerated: a waiter parked on a
// superseded channel unblocks when it fires and its stale generation fails
// Settle. The settled value is always value-equal to the last raw value.
//
// Debouncer is not safe for concurrent use; it is owned by the single
// event-loop goroutine, which is the only place queries change.
type Debouncer struct {
	Interval time.Duration

	timer   *time.Timer
	gen     int
	pending string
}

func NewDebouncer(interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}
	return &Debouncer{Interval: interval}
}

// Set records a new raw value and restarts the quiet window. It returns the
// generation of this change and a timer whose channel fires once the window
// elapses. Pass the generation back to Settle when the timer fires.
func (d *Debouncer) Set(value string) (int, *time.Timer) {
	d.gen++
	d.pending = value
	d.timer = time.NewTimer(d.Interval)
	return d.gen, d.timer
}

// Settle resolves a fired timer. It returns the settled value and true only
// when gen is still the latest generation; a timer that was superseded by a
// later Set resolves to false and must be ignored.
func (d *Debouncer) Settle(gen int) (string, bool) {
	if gen != d.gen {
		return "", false
	}
	return d.pending, true
}

// Flush immediately resolves the pending value and invalidates the
// outstanding quiet window. Used when the user submits the query explicitly
// instead of waiting out the window; the abandoned timer still fires but no
// longer settles, so the value cannot be applied twice.
func (d *Debouncer) Flush() string {
	d.invalidate()
	return d.pending
}

// Stop invalidates the outstanding quiet window, if any. Pending state is
// retained so a later Flush still yields the last raw value.
func (d *Debouncer) Stop() {
	d.invalidate()
}

// invalidate outgenerates the current window. The timer keeps running so
// any waiter parked on its channel terminates when it fires.
func (d *Debouncer) invalidate() {
	if d.timer == nil {
		return
	}
	d.gen++
	d.timer = nil
}
