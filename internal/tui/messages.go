//go:build linux

package tui

import (
	"github.com/asidko/fastkill/internal/display"
	"github.com/asidko/fastkill/internal/killer"
	"github.com/asidko/fastkill/internal/proc"
)

// snapshotMsg carries a freshly discovered and grouped process list.
type snapshotMsg struct {
	entries []display.Entry
	err     error
}

// detailMsg carries extended info for the process under the cursor.
type detailMsg struct {
	pid    int
	detail proc.Detail
}

// killedMsg reports a completed kill request.
type killedMsg struct {
	outcome killer.Outcome
}

// resetMsg fires when the escalation reset timer elapses. The token tells
// stale timers from the pending one.
type resetMsg struct {
	token int
}

// refreshMsg fires after the post-kill delay. A newer kill supersedes
// older pending refreshes via seq.
type refreshMsg struct {
	seq int
}
