package monitor

import (
	"context"
	"sync"
)

// pidSlot is a one-shot rendezvous for the supervised pid. The coordinator sets
// it exactly once, the moment the supervised command has been spawned; both
// workers block on it before their first polling cycle.
type pidSlot struct {
	once  sync.Once
	ready chan struct{}
	pid   int
}

func newPidSlot() *pidSlot {
	return &pidSlot{ready: make(chan struct{})}
}

// set publishes the pid. Calls after the first are ignored.
func (s *pidSlot) set(pid int) {
	s.once.Do(func() {
		s.pid = pid
		close(s.ready)
	})
}

// wait blocks until the pid has been published or the context is canceled. The
// second return value is false when canceled first.
func (s *pidSlot) wait(ctx context.Context) (int, bool) {
	select {
	case <-s.ready:
		return s.pid, true
	case <-ctx.Done():
		return 0, false
	}
}

// childSet holds the most recent snapshot of discovered child pids. Each
// discovery cycle replaces the whole set, so pids of exited processes simply
// drop out without separate removal bookkeeping.
type childSet struct {
	mutex sync.Mutex
	pids  []int
}

// replace swaps in a new snapshot of child pids.
func (c *childSet) replace(pids []int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.pids = pids
}

// snapshot returns a copy of the current child pids.
func (c *childSet) snapshot() []int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	pids := make([]int, len(c.pids))
	copy(pids, c.pids)
	return pids
}
