// Package outcome sequences the asynchronous result of a submitted
// operation into user-visible state. One controller serves one
// triggering control; the control disables itself while a submission
// is in flight, and a terminal state holds until the user
// acknowledges it.
package outcome

import (
	"errors"
	"sync"

	"sui-market-lab/internal/txbuild"
)

// State of the controller's machine.
type State int

const (
	// Idle: no operation in flight, control enabled.
	Idle State = iota
	// Submitting: an operation was confirmed by the user and handed
	// to the executor; the control is disabled.
	Submitting
	// Succeeded: the executor confirmed; holds a confirmation digest
	// until acknowledged.
	Succeeded
	// Failed: the executor rejected, or a local precondition failed;
	// holds a message until acknowledged. Never auto-retried.
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// ErrSubmissionInFlight is returned when a submission begins while
// another is not yet acknowledged. Re-entrant submission is forbidden.
var ErrSubmissionInFlight = errors.New("submission already in flight")

// RefreshEvent signals that chain data changed and dependent views
// must re-fetch their collections. Emitted exactly once per
// acknowledged success, never on failure.
type RefreshEvent struct {
	// Action that succeeded. A successful mint switches the active
	// view to the inventory; other actions refresh in place.
	Action txbuild.Action
}

// Controller drives one operation's pending/success/error lifecycle.
type Controller struct {
	mu      sync.Mutex
	state   State
	action  txbuild.Action
	digest  string
	message string

	refreshCh chan RefreshEvent
}

// NewController creates a controller in the Idle state.
func NewController() *Controller {
	return &Controller{
		// Buffer one event: the acknowledging goroutine must never
		// block on a view that polls the channel.
		refreshCh: make(chan RefreshEvent, 1),
	}
}

// Refresh exposes the data-changed signal. The owning view re-fetches
// its object and listing collections on receive and propagates the
// refresh to sibling views.
func (c *Controller) Refresh() <-chan RefreshEvent {
	return c.refreshCh
}

// Begin transitions Idle -> Submitting on user confirmation of a
// built operation. Any other current state rejects the submission.
func (c *Controller) Begin(action txbuild.Action) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Idle {
		return ErrSubmissionInFlight
	}
	c.state = Submitting
	c.action = action
	c.digest = ""
	c.message = ""
	return nil
}

// Succeed transitions Submitting -> Succeeded with the confirmation
// digest. Ignored outside Submitting.
func (c *Controller) Succeed(digest string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Submitting {
		return
	}
	c.state = Succeeded
	c.digest = digest
}

// Fail transitions Submitting -> Failed with a human-readable
// message, whether the failure was a local precondition or a network
// rejection. Ignored outside Submitting.
func (c *Controller) Fail(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Submitting {
		return
	}
	c.state = Failed
	c.message = message
}

// Complete folds a submission result into the machine: a nil error
// succeeds with the digest, otherwise fails with the error text
// surfaced verbatim.
func (c *Controller) Complete(digest string, err error) {
	if err != nil {
		c.Fail(err.Error())
		return
	}
	c.Succeed(digest)
}

// Acknowledge returns the machine to Idle from a terminal state.
// Only from Succeeded it also emits the refresh signal, exactly once.
// Acknowledging Idle or Submitting is a no-op.
func (c *Controller) Acknowledge() {
	c.mu.Lock()
	wasSuccess := c.state == Succeeded
	action := c.action
	if c.state == Succeeded || c.state == Failed {
		c.state = Idle
		c.digest = ""
		c.message = ""
	}
	c.mu.Unlock()

	if wasSuccess {
		select {
		case c.refreshCh <- RefreshEvent{Action: action}:
		default:
			// A pending unconsumed refresh already forces the
			// same re-fetch; collections are refetched wholesale.
		}
	}
}

// State returns the current machine state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Digest returns the confirmation digest held by Succeeded.
func (c *Controller) Digest() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.digest
}

// Message returns the failure message held by Failed.
func (c *Controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}
