package monitor

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// The discovery and sampling intervals are deliberately asymmetric: the child
// process set changes slowly, but locked memory can spike and release within a
// few milliseconds, and an undersampled loop would miss short-lived peaks.
const (
	defaultDiscoveryInterval = 100 * time.Millisecond
	defaultSampleInterval    = time.Millisecond
)

// discover repeatedly snapshots the supervised process's children, registers
// newly seen processes, and replaces the shared child set. It runs until the
// context is canceled and exits within one discovery interval of cancellation.
func (m *Monitor) discover(ctx context.Context) error {
	pid, ok := m.slot.wait(ctx)
	if !ok {
		return nil
	}

	for {
		children, err := m.listChildren(pid)
		if err != nil {
			return errors.Wrap(err, "list children")
		}

		// Register before publishing the id set so the measurement worker
		// never samples an id that has no record yet.
		pids := make([]int, 0, len(children))
		for _, child := range children {
			m.db.Register(child.Pid, child.Name)
			pids = append(pids, child.Pid)
		}
		m.children.replace(pids)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(m.discoveryInterval):
		}
	}
}

// sample repeatedly reads the locked-memory status of every pid in the current
// child set and folds each reading into the database. Readings for processes
// that exited since discovery simply yield nothing for that cycle.
func (m *Monitor) sample(ctx context.Context) error {
	if _, ok := m.slot.wait(ctx); !ok {
		return nil
	}

	for {
		for _, pid := range m.children.snapshot() {
			if kb, ok := m.lockedMemory(pid); ok {
				m.db.Sample(pid, kb)
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(m.sampleInterval):
		}
	}
}
