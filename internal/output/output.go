package output

import (
	"fmt"
	"sync"
	"time"

	"github.com/efritz/pentimento"
	"github.com/sourcegraph/mlock-go/internal/util"
)

type Options struct {
	Verbosity      Verbosity
	ShowAnimations bool
}

type Verbosity int

const (
	NoOutput Verbosity = iota
	DefaultOutput
	VerboseOutput
)

// updateInterval is the duration between updates in WithProgress.
var updateInterval = time.Second / 4

// ticker is the animated throbber used in printProgress.
var ticker = pentimento.NewAnimatedString([]string{
	"⠸", "⠼",
	"⠴", "⠦",
	"⠧", "⠇",
	"⠏", "⠋",
	"⠙", "⠹",
}, updateInterval)

var successPrefix = "✔"

// WithProgress prints a spinner while the given function is active.
func WithProgress(name string, fn func(), options Options) {
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		fn()
	}()

	WithProgressParallel(&wg, name, options)
}

// WithProgressParallel will continuously print progress to stdout until the given
// wait group counter goes to zero.
func WithProgressParallel(wg *sync.WaitGroup, name string, options Options) {
	sync := make(chan struct{})
	go func() {
		wg.Wait()
		close(sync)
	}()

	withTitle(name, options, func(printer *pentimento.Printer) {
		for {
			select {
			case <-sync:
				return
			case <-time.After(updateInterval):
			}

			printProgress(printer, name)
		}
	})
}

// withTitle invokes withTitleAnimated or withTitleStatic depending on the value
// of the animation option.
func withTitle(name string, options Options, fn func(printer *pentimento.Printer)) {
	if options.Verbosity == NoOutput {
		fn(nil)
	} else if !options.ShowAnimations {
		withTitleStatic(name, options.Verbosity, fn)
	} else {
		withTitleAnimated(name, options.Verbosity, fn)
	}
}

// withTitleStatic invokes the given function with non-animated output.
func withTitleStatic(name string, verbosity Verbosity, fn func(printer *pentimento.Printer)) {
	start := time.Now()
	fmt.Printf("%s\n", name)
	fn(nil)

	if verbosity > DefaultOutput {
		fmt.Printf("Finished in %s.\n", util.HumanElapsed(start))
	}
}

// withTitleAnimated invokes the given function with animated output.
func withTitleAnimated(name string, verbosity Verbosity, fn func(printer *pentimento.Printer)) {
	start := time.Now()
	fmt.Printf("%s %s... ", ticker, name)

	_ = pentimento.PrintProgress(func(printer *pentimento.Printer) error {
		defer func() {
			_ = printer.Reset()
		}()

		fn(printer)
		return nil
	})

	if verbosity > DefaultOutput {
		fmt.Printf("%s %s... Done (%s)\n", successPrefix, name, util.HumanElapsed(start))
	} else {
		fmt.Printf("%s %s... Done\n", successPrefix, name)
	}
}

// printProgress outputs a throbber and the given name to the given printer.
func printProgress(printer *pentimento.Printer, name string) {
	if printer == nil {
		return
	}

	content := pentimento.NewContent()
	content.AddLine("%s %s...", ticker, name)
	printer.WriteContent(content)
}
