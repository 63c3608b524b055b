// Package killer turns repeated kill requests into graduated signal
// strength: the first request soft-terminates, requests within the next
// 30 seconds force-kill, and 30 quiet seconds reset the cycle.
package killer

import (
	"log/slog"
	"time"
)

const (
	// ResetAfter is how long the forced-kill stage stays armed after a
	// kill request before falling back to soft termination.
	ResetAfter = 30 * time.Second
	// RefreshDelay is how long after a kill the process list should be
	// re-read, giving signalled processes time to exit.
	RefreshDelay = 500 * time.Millisecond
)

// Level is the escalation stage the next kill request will use.
type Level int

const (
	Terminate Level = iota // soft, lets the process clean up
	Kill                   // forced, not catchable
)

func (l Level) String() string {
	if l == Kill {
		return "kill"
	}
	return "terminate"
}

// Sender delivers a termination signal of the given strength to one
// process. Implementations must treat vanished or foreign processes as
// expected outcomes, not errors worth surfacing.
type Sender interface {
	Send(pid int, level Level) error
}

// Outcome reports what one kill request did. The zero value means nothing
// happened (empty selection).
type Outcome struct {
	Level      Level // strength that was sent
	Sent       int   // number of PIDs signalled
	ResetToken int   // identifies the reset timer to arm; stale tokens are no-ops
}

// Controller is the escalation state machine. It owns the level and the
// token discipline for the reset timer; actual scheduling belongs to the
// caller's event loop. Single control flow, no locking.
type Controller struct {
	sender   Sender
	level    Level
	resetSeq int
}

func New(sender Sender) *Controller {
	return &Controller{sender: sender}
}

// Level is the stage the next request will send at.
func (c *Controller) Level() Level { return c.level }

// RequestKill signals every PID at the current level and escalates. A
// per-PID delivery failure does not stop the remaining deliveries. Each
// non-empty request mints a fresh reset token, invalidating whatever
// timer was pending.
func (c *Controller) RequestKill(pids []int) Outcome {
	if len(pids) == 0 {
		return Outcome{}
	}

	out := Outcome{Level: c.level, Sent: len(pids)}
	for _, pid := range pids {
		if err := c.sender.Send(pid, c.level); err != nil {
			slog.Debug("signal delivery failed", "pid", pid, "level", c.level.String(), "error", err)
		}
	}

	c.level = Kill
	c.resetSeq++
	out.ResetToken = c.resetSeq
	slog.Info("kill requested", "pids", len(pids), "level", out.Level.String())
	return out
}

// Reset drops back to soft termination if token still identifies the
// pending timer. Timers superseded by a later kill request come back
// false and change nothing.
func (c *Controller) Reset(token int) bool {
	if token != c.resetSeq {
		return false
	}
	c.level = Terminate
	return true
}
