package main

import (
	"fmt"
	"path/filepath"

	"github.com/alecthomas/kingpin"
	"github.com/sourcegraph/mlock-go/internal/output"
)

const version = "1.0.0"

var app = kingpin.New(
	"mlock-go",
	"mlock-go runs `go test` and reports the peak locked-memory usage of the test run's child processes.",
).Version(version)

var (
	moduleRoot    string
	noAnimation   bool
	noOutput      bool
	verboseOutput bool
	testArgs      []string
)

func init() {
	app.HelpFlag.Short('h')
	app.VersionFlag.Short('v')
	app.HelpFlag.Hidden()

	app.Flag("moduleRoot", "Specifies the directory containing the go.mod file of the module under test.").Default(".").StringVar(&moduleRoot)
	app.Flag("noAnimation", "Do not animate the progress indicator.").Default("false").BoolVar(&noAnimation)
	app.Flag("noOutput", "Do not output progress.").Default("false").BoolVar(&noOutput)
	app.Flag("verbose", "Display timings.").Default("false").BoolVar(&verboseOutput)
	app.Arg("args", "Additional arguments passed through to `go test` (separate with --).").StringsVar(&testArgs)
}

func parseArgs(args []string) (err error) {
	if _, err := app.Parse(args); err != nil {
		return err
	}

	moduleRoot, err = filepath.Abs(moduleRoot)
	if err != nil {
		return fmt.Errorf("get abspath of module root: %v", err)
	}

	return nil
}

func outputOptions() output.Options {
	verbosity := output.DefaultOutput
	if verboseOutput {
		verbosity = output.VerboseOutput
	}
	if noOutput {
		verbosity = output.NoOutput
	}

	return output.Options{
		Verbosity:      verbosity,
		ShowAnimations: !noAnimation,
	}
}
