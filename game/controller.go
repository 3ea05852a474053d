package game

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// eventBuffer bounds how many inputs may wait between two ticks.
const eventBuffer = 16

// Controller is the host loop: every tick it takes at most one pending input,
// feeds it to the session and hands the resulting snapshot to render. Only
// the goroutine running Run or Step touches the session.
type Controller struct {
	session *Session
	events  chan Event
	render  func(Snapshot)
	tick    time.Duration
	log     zerolog.Logger
}

func NewController(session *Session, render func(Snapshot), tick time.Duration, log zerolog.Logger) *Controller {
	return &Controller{
		session: session,
		events:  make(chan Event, eventBuffer),
		render:  render,
		tick:    tick,
		log:     log,
	}
}

// Push queues an input from any goroutine. It never blocks; inputs arriving
// while the buffer is full are dropped.
func (c *Controller) Push(ev Event) {
	select {
	case c.events <- ev:
	default:
		c.log.Debug().Msg("input dropped")
	}
}

// Poll returns the next pending input, or nil when there is none.
func (c *Controller) Poll() Event {
	select {
	case ev := <-c.events:
		return ev
	default:
		return nil
	}
}

// Step runs one tick.
func (c *Controller) Step() error {
	err := c.session.Update(c.Poll())
	c.render(c.session.Snapshot())
	return err
}

// Run ticks until ctx is done. Session errors are logged and play goes on;
// the player can still restart.
func (c *Controller) Run(ctx context.Context) {
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	c.render(c.session.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := c.Step(); err != nil {
				c.log.Error().Err(err).Msg("update")
			}
		}
	}
}
