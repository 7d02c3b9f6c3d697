package timer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run ticks c n times with gen and counts the completions.
func run(c *Countdown, gen, n int) int {
	var completions int

	for range n {
		if c.Tick(gen) == EventCompleted {
			completions++
		}
	}

	return completions
}

func TestCountdownCompletesOnce(t *testing.T) {
	c, err := NewCountdown(5)
	require.NoError(t, err)

	gen, ok := c.Start()
	require.True(t, ok)

	assert.Equal(t, 1, run(c, gen, 8))
	assert.Equal(t, Completed, c.State())
	assert.Equal(t, 0, c.Remaining())
}

func TestCountdownResetAfterCompletion(t *testing.T) {
	c, err := NewCountdown(5)
	require.NoError(t, err)

	gen, _ := c.Start()
	require.Equal(t, 1, run(c, gen, 5))

	_, ok := c.Start()
	assert.False(t, ok, "a completed run cannot be restarted without reset")

	c.Reset()
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, 5, c.Remaining())

	gen, ok = c.Start()
	require.True(t, ok)
	assert.Equal(t, 1, run(c, gen, 5))
}

func TestCountdownPauseBeforeCompletion(t *testing.T) {
	c, err := NewCountdown(5)
	require.NoError(t, err)

	gen, _ := c.Start()
	assert.Equal(t, 0, run(c, gen, 3))

	require.True(t, c.Pause())
	assert.Equal(t, 0, run(c, gen, 10), "ticks while paused are ignored")
	assert.Equal(t, 2, c.Remaining())

	gen, ok := c.Start()
	require.True(t, ok)
	assert.Equal(t, 1, run(c, gen, 2))
}

func TestCountdownStaleTicks(t *testing.T) {
	c, err := NewCountdown(5)
	require.NoError(t, err)

	first, _ := c.Start()
	c.Pause()

	second, _ := c.Start()
	assert.NotEqual(t, first, second)

	assert.Equal(t, EventNone, c.Tick(first))
	assert.Equal(t, 5, c.Remaining())

	assert.Equal(t, EventTick, c.Tick(second))
	assert.Equal(t, 4, c.Remaining())

	c.Cancel()
	assert.Equal(t, EventNone, c.Tick(second))
	assert.Equal(t, Paused, c.State())
}

func TestCountdownSetDuration(t *testing.T) {
	c, err := NewCountdown(300)
	require.NoError(t, err)

	require.NoError(t, c.SetDuration(600))
	assert.Equal(t, 600, c.Remaining())

	gen, _ := c.Start()
	c.Tick(gen)

	err = c.SetDuration(60)
	assert.True(t, errors.Is(err, ErrDurationWhileRunning))
	assert.Equal(t, 600, c.Configured())

	c.Pause()
	require.NoError(t, c.SetDuration(60))
	assert.Equal(t, Idle, c.State(), "a paused run is discarded")
	assert.Equal(t, 60, c.Remaining())

	for _, secs := range []int{0, -5} {
		assert.True(t, errors.Is(c.SetDuration(secs), ErrInvalidDuration))
	}

	_, err = NewCountdown(0)
	assert.True(t, errors.Is(err, ErrInvalidDuration))
}

func TestCountdownRunningSignal(t *testing.T) {
	c, err := NewCountdown(2)
	require.NoError(t, err)

	var signals []bool

	c.Subscribe(func(running bool) {
		signals = append(signals, running)
	})

	gen, _ := c.Start()
	c.Pause()

	gen, _ = c.Start()
	run(c, gen, 2)

	c.Reset()

	gen, _ = c.Start()
	c.Reset()

	assert.Equal(t, []bool{true, false, true, false, true, false}, signals)
	assert.Equal(t, EventNone, c.Tick(gen))
}
