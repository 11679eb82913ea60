package browser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebounceBurstSettlesOnce(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	// A burst of changes inside the quiet window: only the final
	// generation settles, with the final value.
	gen1, _ := d.Set("b")
	gen2, _ := d.Set("bu")
	gen3, timer := d.Set("budget")

	_, ok := d.Settle(gen1)
	assert.False(t, ok)
	_, ok = d.Settle(gen2)
	assert.False(t, ok)

	select {
	case <-timer.C:
	case <-time.After(time.Second):
		t.Fatal("debounce timer never fired")
	}

	v, ok := d.Settle(gen3)
	require.True(t, ok)
	assert.Equal(t, "budget", v)
}

func TestDebounceRestartsWindowOnEachChange(t *testing.T) {
	d := NewDebouncer(40 * time.Millisecond)

	gen1, first := d.Set("a")
	time.Sleep(10 * time.Millisecond)
	gen2, second := d.Set("ab")

	// The superseded timer still fires, so a waiter parked on its channel
	// always terminates, but its generation no longer settles.
	select {
	case <-first.C:
	case <-time.After(time.Second):
		t.Fatal("superseded timer never fired")
	}
	_, ok := d.Settle(gen1)
	assert.False(t, ok)

	select {
	case <-second.C:
	case <-time.After(time.Second):
		t.Fatal("debounce timer never fired")
	}

	v, ok := d.Settle(gen2)
	require.True(t, ok)
	assert.Equal(t, "ab", v)
}

func TestDebounceFlush(t *testing.T) {
	d := NewDebouncer(time.Hour)

	gen, _ := d.Set("immediate")
	assert.Equal(t, "immediate", d.Flush())

	// The flushed window must not settle again when its timer eventually
	// fires; the caller already applied the value.
	_, ok := d.Settle(gen)
	assert.False(t, ok)
}

func TestDebounceStopLeavesTimerRunning(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	gen, timer := d.Set("abandoned")
	d.Stop()

	// Stop only invalidates the generation. The timer keeps running so a
	// waiter parked on its channel terminates instead of leaking.
	select {
	case <-timer.C:
	case <-time.After(time.Second):
		t.Fatal("timer never fired after Stop")
	}
	_, ok := d.Settle(gen)
	assert.False(t, ok)
	assert.Equal(t, "abandoned", d.Flush())
}

func TestDebounceDefaultInterval(t *testing.T) {
	d := NewDebouncer(0)
	assert.Equal(t, DefaultDebounceInterval, d.Interval)
}
