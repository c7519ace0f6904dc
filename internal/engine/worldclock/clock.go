package worldclock

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Dan9191/calc-service/internal/models"
	"github.com/robfig/cron/v3"
)

// EverySecond fires at the start of every wall-clock second
const EverySecond = "* * * * * *"

// ErrClockStopped is returned by Start once Stop has been called
var ErrClockStopped = errors.New("clock already stopped")

// Tick is what a Clock delivers on every firing
type Tick struct {
	At             time.Time             `json:"at"`
	Readings       []models.ClockReading `json:"readings"`
	HourDifference float64               `json:"hour_difference"`
	Err            error                 `json:"-"`
}

// Option configures a Clock
type Option func(*Clock)

// WithSpec overrides the cron schedule (seconds field first)
func WithSpec(spec string) Option {
	return func(c *Clock) { c.spec = spec }
}

// WithLogger routes scheduler messages to l
func WithLogger(l cron.Logger) Option {
	return func(c *Clock) { c.logger = l }
}

// WithNow overrides the time source
func WithNow(now func() time.Time) Option {
	return func(c *Clock) { c.now = now }
}

// Clock re-renders a Board on a repeating schedule until stopped.
// A Clock runs at most once: Stop is final.
type Clock struct {
	board  *Board
	notify func(Tick)
	spec   string
	logger cron.Logger
	now    func() time.Time

	cron      *cron.Cron
	mu        sync.Mutex // orders Start against Stop
	startOnce sync.Once
	stopOnce  sync.Once
	stopped   chan struct{}
}

// NewClock creates a stopped clock that calls notify with fresh readings
func NewClock(board *Board, notify func(Tick), opts ...Option) *Clock {
	c := &Clock{
		board:   board,
		notify:  notify,
		spec:    EverySecond,
		logger:  cron.DiscardLogger,
		now:     time.Now,
		stopped: make(chan struct{}),
	}
	for _, o := range opts {
		o(c)
	}
	c.cron = cron.New(
		cron.WithSeconds(),
		cron.WithLogger(c.logger),
		cron.WithChain(cron.SkipIfStillRunning(c.logger)),
	)
	return c
}

// Start renders once immediately, then on every scheduled firing.
// Starting a stopped clock returns ErrClockStopped. notify must not call
// Start or Stop.
func (c *Clock) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	select {
	case <-c.stopped:
		return ErrClockStopped
	default:
	}
	var err error
	c.startOnce.Do(func() {
		if _, err = c.cron.AddFunc(c.spec, c.Refresh); err != nil {
			err = fmt.Errorf("failed to schedule clock %q: %w", c.spec, err)
			return
		}
		c.Refresh()
		c.cron.Start()
	})
	return err
}

// Refresh renders the board now and delivers the tick
func (c *Clock) Refresh() {
	select {
	case <-c.stopped:
		return
	default:
	}
	now := c.now()
	t := Tick{At: now}
	t.Readings, t.Err = c.board.Readings(now)
	if t.Err == nil && len(t.Readings) >= 2 {
		t.HourDifference, t.Err = c.board.HourDifference(now)
	}
	c.notify(t)
}

// Stop cancels the schedule and waits for a running refresh to finish.
// It is safe to call more than once.
func (c *Clock) Stop() {
	c.stopOnce.Do(func() {
		c.mu.Lock()
		close(c.stopped)
		c.mu.Unlock()
		<-c.cron.Stop().Done()
	})
}

// Done is closed once Stop has been called
func (c *Clock) Done() <-chan struct{} {
	return c.stopped
}
