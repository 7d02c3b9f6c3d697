package timer

// State is the lifecycle stage of a countdown.
type State int

const (
	Idle State = iota
	Running
	Paused
	Completed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return "idle"
	}
}

// Event is the outcome of a tick.
type Event int

const (
	// EventNone means the tick was stale or arrived outside a run.
	EventNone Event = iota
	// EventTick means a second elapsed and the countdown continues.
	EventTick
	// EventCompleted is reported once per run, on the tick that reaches
	// zero.
	EventCompleted
)

// Countdown is the meditation session state machine. It owns no
// goroutines: the host schedules one tick per second carrying the
// generation returned by Start, and every transition that stops the
// countdown bumps the generation so that pending ticks are dropped.
type Countdown struct {
	listeners  []func(running bool)
	configured int
	remaining  int
	gen        int
	state      State
}

// NewCountdown returns an idle countdown of the given number of seconds.
func NewCountdown(seconds int) (*Countdown, error) {
	if seconds <= 0 {
		return nil, errInvalidDuration.Fmt(seconds)
	}

	return &Countdown{
		configured: seconds,
		remaining:  seconds,
	}, nil
}

func (c *Countdown) State() State { return c.state }

// Remaining returns the seconds left in the current run.
func (c *Countdown) Remaining() int { return c.remaining }

// Configured returns the length of a run in seconds.
func (c *Countdown) Configured() int { return c.configured }

// Generation identifies the live tick chain.
func (c *Countdown) Generation() int { return c.gen }

func (c *Countdown) Running() bool { return c.state == Running }

// Progress returns the fraction of the run that has elapsed.
func (c *Countdown) Progress() float64 {
	return 1 - float64(c.remaining)/float64(c.configured)
}

// Subscribe registers fn to be called whenever the countdown starts or
// stops running.
func (c *Countdown) Subscribe(fn func(running bool)) {
	c.listeners = append(c.listeners, fn)
}

func (c *Countdown) notify(running bool) {
	for _, fn := range c.listeners {
		fn(running)
	}
}

// setState moves to s and notifies listeners if the running state
// changed.
func (c *Countdown) setState(s State) {
	wasRunning := c.state == Running

	c.state = s

	if wasRunning != (s == Running) {
		c.notify(s == Running)
	}
}

// Start begins or resumes the countdown and returns the generation that
// ticks must carry. It reports false if the countdown cannot start from
// its current state.
func (c *Countdown) Start() (int, bool) {
	if c.state != Idle && c.state != Paused {
		return c.gen, false
	}

	c.gen++
	c.setState(Running)

	return c.gen, true
}

// Pause suspends a running countdown.
func (c *Countdown) Pause() bool {
	if c.state != Running {
		return false
	}

	c.gen++
	c.setState(Paused)

	return true
}

// Tick advances the countdown by one second if gen belongs to the live
// tick chain.
func (c *Countdown) Tick(gen int) Event {
	if c.state != Running || gen != c.gen {
		return EventNone
	}

	c.remaining--

	if c.remaining > 0 {
		return EventTick
	}

	c.remaining = 0
	c.gen++
	c.setState(Completed)

	return EventCompleted
}

// Reset returns the countdown to idle with the full duration.
func (c *Countdown) Reset() {
	c.gen++
	c.remaining = c.configured
	c.setState(Idle)
}

// Cancel stops the tick chain without completing the run.
func (c *Countdown) Cancel() {
	c.gen++

	if c.state == Running {
		c.setState(Paused)
	}
}

// SetDuration changes the length of a run. It is rejected while running;
// a paused or completed run is discarded.
func (c *Countdown) SetDuration(seconds int) error {
	if c.state == Running {
		return errDurationWhileRunning
	}

	if seconds <= 0 {
		return errInvalidDuration.Fmt(seconds)
	}

	c.configured = seconds
	c.Reset()

	return nil
}
