package parallel

import (
	"sync"
	"sync/atomic"
)

// Run starts each of the given functions in its own goroutine. Every function gets
// a dedicated goroutine because the workers given to this package are long-lived
// polling loops, not short tasks to be multiplexed over a bounded pool. This
// function returns a wait group synchronized on the invocations, a channel on
// which any error values are written, and a pointer to the number of functions
// that have completed, which is updated atomically.
func Run(fns ...func() error) (*sync.WaitGroup, <-chan error, *uint64) {
	var count uint64
	var wg sync.WaitGroup

	errs := make(chan error, len(fns))

	for _, fn := range fns {
		wg.Add(1)

		go func(fn func() error) {
			defer wg.Done()

			if err := fn(); err != nil {
				errs <- err
			}

			atomic.AddUint64(&count, 1)
		}(fn)
	}

	go func() {
		defer close(errs)

		wg.Wait()
	}()

	return &wg, errs, &count
}
