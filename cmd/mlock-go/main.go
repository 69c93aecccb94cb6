// The program mlock-go runs `go test` for a module and reports the peak
// locked-memory usage of every child process of the test run.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/sourcegraph/mlock-go/internal/command"
	"github.com/sourcegraph/mlock-go/internal/monitor"
	"github.com/sourcegraph/mlock-go/internal/output"
	"github.com/sourcegraph/mlock-go/internal/proc"
)

func main() {
	if err := mainErr(); err != nil {
		fmt.Fprint(os.Stderr, fmt.Sprintf("\nerror: %v\n", err))
		os.Exit(1)
	}
}

func mainErr() error {
	if err := parseArgs(os.Args[1:]); err != nil {
		return err
	}

	printDiagnostics()

	m := monitor.New()
	m.Start(context.Background())

	limit, err := proc.ReadMemlockLimit()
	if err != nil {
		return fmt.Errorf("query memlock limit: %v", err)
	}
	printLimits(limit)

	args := append([]string{"test"}, testArgs...)
	supervised, err := command.Start(moduleRoot, "go", args...)
	if err != nil {
		return fmt.Errorf("spawn go test: %v", err)
	}
	m.SetSupervised(supervised.Pid())

	var testOutput string
	var testErr error
	output.WithProgress("Running `go test`", func() {
		testOutput, testErr = supervised.Wait()
	}, outputOptions())

	// Failing tests are reported through the captured output, not as a fault
	// of this tool; only an inability to run the command at all is.
	if _, ok := testErr.(*exec.ExitError); testErr != nil && !ok {
		return fmt.Errorf("go test: %v", testErr)
	}

	if err := m.Stop(); err != nil {
		return err
	}

	printReport(m.Database(), testOutput)
	return nil
}
