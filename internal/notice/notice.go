// Package notice holds the dashboard's transient message slot: one message
// at a time, replaced immediately by the next Show, gone after a fixed
// display window.
package notice

import (
	"sync"
	"time"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// DisplayDuration is how long a notice stays visible. Severity never
// changes the timing, only the styling.
const DisplayDuration = 3 * time.Second

type Notice struct {
	Message  string
	Severity Severity
}

// Banner is the single global notification slot. Expiry is deadline-based:
// no timer goroutine exists, so rapid Show calls trivially last-win and
// nothing needs cancelling.
type Banner struct {
	mu       sync.Mutex
	current  Notice
	deadline time.Time
	now      func() time.Time
}

func NewBanner() *Banner {
	return &Banner{now: time.Now}
}

// Show replaces any currently displayed notice immediately, no queueing.
func (b *Banner) Show(message string, severity Severity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = Notice{Message: message, Severity: severity}
	b.deadline = b.now().Add(DisplayDuration)
}

// Current returns the active notice, if its display window is still open.
func (b *Banner) Current() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.deadline.IsZero() || b.now().After(b.deadline) {
		return Notice{}, false
	}
	return b.current, true
}
