package sound

import (
	"log/slog"
	"slices"
	"sync"
)

// Player plays a single track at a time. onEnd is called from another
// goroutine when the track finishes playing on its own.
type Player interface {
	Play(t Track, onEnd func()) error
	Pause()
	Resume() error
	Stop()
}

// Coordinator keeps the ambient track in step with the timer: the selected
// track plays while the timer runs and loops until it stops. Selection is
// independent of the timer state.
type Coordinator struct {
	player   Player
	selected *Track
	lastErr  error
	played   []string
	mu       sync.Mutex
	// gen identifies the current playback so that the end of an earlier
	// one is ignored.
	gen     int
	running bool
	playing bool
	paused  bool
}

// NewCoordinator returns a Coordinator that drives p.
func NewCoordinator(p Player) *Coordinator {
	return &Coordinator{player: p}
}

// Select changes the ambient track. A nil track turns the sound off. The
// new track starts at once if the timer is running.
func (c *Coordinator) Select(t *Track) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t != nil && c.selected != nil && *t == *c.selected {
		return
	}

	c.stop()

	c.selected = t

	if c.running && t != nil {
		c.start()
	}
}

// Selected returns the current track, or nil when the sound is off.
func (c *Coordinator) Selected() *Track {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.selected
}

// SetRunning receives the timer's running state.
func (c *Coordinator) SetRunning(running bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if running == c.running {
		return
	}

	c.running = running

	if !running {
		if c.playing && !c.paused {
			c.player.Pause()
			c.paused = true
		}

		return
	}

	if c.selected == nil {
		return
	}

	if c.playing && c.paused {
		if err := c.player.Resume(); err != nil {
			c.fail(err)
			return
		}

		c.paused = false

		return
	}

	c.start()
}

// Stop ends playback. The selection is kept.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.running = false

	c.stop()
}

// Played returns the distinct tracks played since the last ResetSession,
// in the order they were first played.
func (c *Coordinator) Played() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.played)
}

// ResetSession forgets the tracks played so far.
func (c *Coordinator) ResetSession() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.played = nil
}

// Err returns the most recent playback failure, if any.
func (c *Coordinator) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lastErr
}

func (c *Coordinator) start() {
	c.gen++

	gen := c.gen
	track := *c.selected

	err := c.player.Play(track, func() {
		c.ended(gen)
	})
	if err != nil {
		c.playing = false
		c.fail(err)

		return
	}

	c.playing = true
	c.paused = false
	c.lastErr = nil

	if !slices.Contains(c.played, track.Name) {
		c.played = append(c.played, track.Name)
	}
}

func (c *Coordinator) stop() {
	c.gen++

	if c.playing {
		c.player.Stop()
	}

	c.playing = false
	c.paused = false
}

// ended restarts the track if the timer is still running and the playback
// that ended is the current one.
func (c *Coordinator) ended(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return
	}

	c.playing = false
	c.paused = false

	if !c.running || c.selected == nil {
		return
	}

	slog.Debug("looping ambient track", slog.String("track", c.selected.Name))

	c.start()
}

func (c *Coordinator) fail(err error) {
	c.lastErr = err

	slog.Error(
		"ambient playback failed",
		slog.Any("error", err),
	)
}
