// Package debounce guards user-initiated actions against rapid re-triggering.
// Double-submitted forms and double-invoked handlers land on the server as
// near-simultaneous duplicate requests; a Guard suppresses the repeats.
package debounce

import (
	"sync"
	"time"
)

// DefaultCooldown is the suppression window used when none is configured.
const DefaultCooldown = 500 * time.Millisecond

// Clock returns the current time. Injected so tests run without wall-clock
// waits.
type Clock func() time.Time

// Guard suppresses re-entry of one logical action site within a cooldown
// window, and re-application to an identical non-empty key back-to-back.
// Each guard must be owned by exactly one action site; sharing a guard
// across unrelated actions causes false suppression.
type Guard struct {
	mu       sync.Mutex
	cooldown time.Duration
	clock    Clock

	lastActionAt time.Time
	lastKey      string
}

// NewGuard creates a guard with the given cooldown.
// PRE: none
// POST: cooldown <= 0 falls back to DefaultCooldown; nil clock uses time.Now
func NewGuard(cooldown time.Duration, clock Clock) *Guard {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	if clock == nil {
		clock = time.Now
	}
	return &Guard{cooldown: cooldown, clock: clock}
}

// TryAct reports whether the action may proceed. It returns true and records
// the attempt when the cooldown has elapsed and the key differs from the last
// accepted one; otherwise it returns false and leaves the guard unchanged.
// An empty key marks a keyless action: only the cooldown applies.
// Suppression is a normal outcome, not an error; callers may retry after the
// cooldown.
// POST: on true, lastActionAt and lastKey are updated atomically
func (g *Guard) TryAct(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock()
	if !g.lastActionAt.IsZero() && now.Sub(g.lastActionAt) < g.cooldown {
		return false
	}
	if key != "" && key == g.lastKey {
		return false
	}
	g.lastActionAt = now
	g.lastKey = key
	return true
}

// Reset clears the guard so the next TryAct always proceeds.
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lastActionAt = time.Time{}
	g.lastKey = ""
}
