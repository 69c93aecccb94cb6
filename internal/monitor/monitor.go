package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sourcegraph/mlock-go/internal/parallel"
	"github.com/sourcegraph/mlock-go/internal/proc"
)

// Monitor owns the shared state for one monitoring session and coordinates the
// discovery and measurement workers around a supervised command's lifetime. The
// workers hold references to the shared state but the Monitor allocates and
// tears it down; no worker ever holds more than one lock at a time.
type Monitor struct {
	db       *Database
	slot     *pidSlot
	children *childSet

	discoveryInterval time.Duration
	sampleInterval    time.Duration

	// Swapped out in tests.
	listChildren func(pid int) ([]proc.Child, error)
	lockedMemory func(pid int) (uint64, bool)

	cancel context.CancelFunc
	wg     *sync.WaitGroup
	errs   <-chan error
}

func New() *Monitor {
	return &Monitor{
		db:                NewDatabase(),
		slot:              newPidSlot(),
		children:          &childSet{},
		discoveryInterval: defaultDiscoveryInterval,
		sampleInterval:    defaultSampleInterval,
		listChildren:      proc.Children,
		lockedMemory:      proc.LockedMemory,
	}
}

// Start launches both workers. They idle until SetSupervised publishes a pid.
func (m *Monitor) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)

	m.wg, m.errs, _ = parallel.Run(
		func() error { return m.discover(ctx) },
		func() error { return m.sample(ctx) },
	)
}

// SetSupervised publishes the supervised command's pid, releasing both workers
// into their polling loops. Only the first call has any effect.
func (m *Monitor) SetSupervised(pid int) {
	m.slot.set(pid)
}

// Stop signals both workers to stop and blocks until each has drained its final
// cycle, then reports any errors the workers hit. The database stays readable
// after Stop returns.
func (m *Monitor) Stop() error {
	m.cancel()
	m.wg.Wait()

	var combined error
	for err := range m.errs {
		combined = multierror.Append(combined, err)
	}

	return combined
}

// Database exposes the measurement database for reporting once Stop has returned.
func (m *Monitor) Database() *Database {
	return m.db
}
